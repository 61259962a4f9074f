// Package host abstracts the note-taking application the practice command runs inside.
package host

import "context"

// Handler runs a registered command.
type Handler func(ctx context.Context) error

// Host is the capability surface the practice command needs from its environment.
// Paths are relative to the host's vault.
type Host interface {
	RegisterCommand(id, name string, handler Handler)
	Notify(message string)
	WriteBinary(path string, data []byte) error
	WriteText(path, content string) error
}
