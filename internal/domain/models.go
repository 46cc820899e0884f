package domain

// BufferID identifies a slot in the host's buffer table. IDs start at 1;
// 0 is the host's sentinel for "no buffer". The space is dense-ish: gaps
// appear after deletions and are never reused.
type BufferID int

// NoBuffer is the sentinel id meaning "no buffer".
const NoBuffer BufferID = 0

// Well-known filetypes
const (
	FiletypeHelp     = "help"
	FiletypeNerdtree = "nerdtree"
	FiletypeTagbar   = "tagbar"
	FiletypeQuickfix = "qf"
)

// DefaultSkipFiletypes returns the plugin-owned window filetypes that
// navigation must never start from or land on.
func DefaultSkipFiletypes() []string {
	return []string{FiletypeNerdtree, FiletypeTagbar, FiletypeQuickfix}
}

// Buffer represents an open document slot in the host editor
type Buffer struct {
	ID       BufferID
	Name     string // display name shown in the buffer bar
	Path     string // file path ("" for scratch buffers)
	Filetype string
	Listed   bool // visible in normal buffer-switching UI
	Loaded   bool
	Modified bool
	Lines    []string
}

// IsHelp reports whether the buffer belongs to the help navigation class
func (b *Buffer) IsHelp() bool {
	return b.Filetype == FiletypeHelp
}
