package host

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrPathTraversal is returned for paths that would escape the vault.
	ErrPathTraversal = errors.New("path escapes vault")

	// ErrUnknownCommand is returned by Run for ids that were never registered.
	ErrUnknownCommand = errors.New("unknown command")
)

type command struct {
	name    string
	handler Handler
}

// VaultHost is a Host backed by a directory on the local filesystem.
type VaultHost struct {
	root string

	mu       sync.Mutex
	commands map[string]command
	notices  []string
}

// NewVaultHost creates a host rooted at dir.
func NewVaultHost(dir string) (*VaultHost, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault %s: %w", dir, err)
	}
	return &VaultHost{
		root:     root,
		commands: make(map[string]command),
	}, nil
}

// Root returns the absolute vault directory.
func (h *VaultHost) Root() string {
	return h.root
}

func (h *VaultHost) RegisterCommand(id, name string, handler Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands[id] = command{name: name, handler: handler}
	log.Printf("VaultHost: Registered command %s (%s)", id, name)
}

// Commands lists registered command ids in sorted order.
func (h *VaultHost) Commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.commands))
	for id := range h.commands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Run invokes the command registered under id.
func (h *VaultHost) Run(ctx context.Context, id string) error {
	h.mu.Lock()
	cmd, ok := h.commands[id]
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}

	log.Printf("VaultHost: Running %s", cmd.name)
	return cmd.handler(ctx)
}

func (h *VaultHost) Notify(message string) {
	h.mu.Lock()
	h.notices = append(h.notices, message)
	h.mu.Unlock()
	log.Printf("VaultHost: %s", message)
}

// Notices returns every message passed to Notify so far.
func (h *VaultHost) Notices() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.notices...)
}

func (h *VaultHost) WriteBinary(path string, data []byte) error {
	full, err := h.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create folder for %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (h *VaultHost) WriteText(path, content string) error {
	return h.WriteBinary(path, []byte(content))
}

// resolve maps a vault-relative path to an absolute one inside the vault.
func (h *VaultHost) resolve(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, path)
	}

	full := filepath.Join(h.root, filepath.FromSlash(path))
	root := h.root
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	if !strings.HasPrefix(full, root) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, path)
	}
	return full, nil
}
