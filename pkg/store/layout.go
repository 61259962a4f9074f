package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	AudioFolder = "audio"
	PDFFolder   = "pdf"
	CacheFolder = "cache"
	ContentFile = "content.json"
	lockFile    = "content.lock"
)

// Layout is the fixed directory layout under the per-user config root.
type Layout struct {
	Root      string
	AudioDir  string
	PDFDir    string
	CacheDir  string
	CachePath string
}

// NewLayout derives the audio, pdf and cache locations from root.
func NewLayout(root string) Layout {
	cacheDir := filepath.Join(root, CacheFolder)
	return Layout{
		Root:      root,
		AudioDir:  filepath.Join(root, AudioFolder),
		PDFDir:    filepath.Join(root, PDFFolder),
		CacheDir:  cacheDir,
		CachePath: filepath.Join(cacheDir, ContentFile),
	}
}

// EnsureLayout creates the root and its three subdirectories when the root does not exist.
// An existing root is left untouched, even if a subdirectory is missing.
func (l Layout) EnsureLayout() error {
	if _, err := os.Stat(l.Root); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config root: %w", err)
	}

	for _, dir := range []string{l.Root, l.AudioDir, l.PDFDir, l.CacheDir} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	log.Printf("Store: Created directories: %s %s %s %s", l.Root, l.AudioDir, l.PDFDir, l.CacheDir)
	return nil
}

// AudioPath returns where the audio of the item titled title is stored.
func (l Layout) AudioPath(title string) string {
	return filepath.Join(l.AudioDir, SanitizeTitle(title)+".mp3")
}

// PDFPath returns where the PDF of the item titled title is stored.
func (l Layout) PDFPath(title string) string {
	return filepath.Join(l.PDFDir, SanitizeTitle(title)+".pdf")
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (l Layout) lockPath() string {
	return filepath.Join(l.CacheDir, lockFile)
}
