package buffers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bufcycle/internal/domain"
	"bufcycle/internal/eventbus"
)

// Store owns the host-side buffer table: an ordered, dense-ish integer id
// space starting at 1, with gaps left behind by deletions. It implements
// navigator.BufferQuery and navigator.BufferActivator.
type Store struct {
	bufs    map[domain.BufferID]*domain.Buffer
	nextID  domain.BufferID
	current domain.BufferID
	bus     eventbus.EventBus
}

// NewStore creates an empty buffer table. bus may be nil.
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{
		bufs:   make(map[domain.BufferID]*domain.Buffer),
		nextID: 1,
		bus:    bus,
	}
}

// Open loads a file into a new buffer and makes it current
func (s *Store) Open(path string) (*domain.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	buf := s.add(&domain.Buffer{
		Name:     filepath.Base(path),
		Path:     path,
		Filetype: DetectFiletype(path),
		Listed:   true,
		Loaded:   true,
		Lines:    strings.Split(strings.TrimRight(string(data), "\n"), "\n"),
	})
	s.current = buf.ID
	return buf, nil
}

// OpenScratch creates an in-memory buffer with the given filetype and
// makes it current
func (s *Store) OpenScratch(name, filetype string, lines []string) *domain.Buffer {
	buf := s.add(&domain.Buffer{
		Name:     name,
		Filetype: filetype,
		Listed:   true,
		Loaded:   true,
		Lines:    lines,
	})
	s.current = buf.ID
	return buf
}

// OpenPluginWindow creates an unlisted plugin-owned buffer (file tree, tag
// outline, quickfix). It does not become current: plugin windows open in
// the background in this host.
func (s *Store) OpenPluginWindow(name, filetype string, lines []string) *domain.Buffer {
	return s.add(&domain.Buffer{
		Name:     name,
		Filetype: filetype,
		Listed:   false,
		Loaded:   true,
		Lines:    lines,
	})
}

func (s *Store) add(buf *domain.Buffer) *domain.Buffer {
	buf.ID = s.nextID
	s.nextID++
	s.bufs[buf.ID] = buf
	if s.bus != nil {
		s.bus.Publish(domain.BufferOpenedEvent{Buffer: *buf})
	}
	return buf
}

// Get returns the buffer with the given id, or nil
func (s *Store) Get(id domain.BufferID) *domain.Buffer {
	return s.bufs[id]
}

// Current returns the current buffer, or nil when the table is empty
func (s *Store) Current() *domain.Buffer {
	return s.bufs[s.current]
}

// All returns the live buffers in id order
func (s *Store) All() []*domain.Buffer {
	out := make([]*domain.Buffer, 0, len(s.bufs))
	for _, b := range s.bufs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of live buffers
func (s *Store) Len() int {
	return len(s.bufs)
}

// SetModified flags a buffer as holding unsaved changes
func (s *Store) SetModified(id domain.BufferID, modified bool) {
	if b, ok := s.bufs[id]; ok {
		b.Modified = modified
	}
}

// BufferQuery implementation. Every call reads the live table; nothing is
// cached between navigation commands.

func (s *Store) Exists(id domain.BufferID) bool {
	_, ok := s.bufs[id]
	return ok
}

func (s *Store) IsLoaded(id domain.BufferID) bool {
	b, ok := s.bufs[id]
	return ok && b.Loaded
}

func (s *Store) IsListed(id domain.BufferID) bool {
	b, ok := s.bufs[id]
	return ok && b.Listed
}

func (s *Store) Filetype(id domain.BufferID) string {
	if b, ok := s.bufs[id]; ok {
		return b.Filetype
	}
	return ""
}

func (s *Store) CurrentBufferID() domain.BufferID {
	return s.current
}

func (s *Store) HighestBufferID() domain.BufferID {
	var highest domain.BufferID
	for id := range s.bufs {
		if id > highest {
			highest = id
		}
	}
	return highest
}

// BufferActivator implementation.

// Activate makes id the current buffer
func (s *Store) Activate(id domain.BufferID) error {
	if _, ok := s.bufs[id]; !ok {
		return fmt.Errorf("buffer %d does not exist", id)
	}
	s.current = id
	return nil
}

// DeleteBuffer removes id from the table, leaving a gap in the id space.
// Buffers with unsaved changes are refused; callers decide whether to
// discard via Discard first.
func (s *Store) DeleteBuffer(id domain.BufferID) error {
	b, ok := s.bufs[id]
	if !ok {
		return fmt.Errorf("buffer %d does not exist", id)
	}
	if b.Modified {
		return fmt.Errorf("buffer %d has unsaved changes", id)
	}
	delete(s.bufs, id)
	return nil
}

// Discard drops the unsaved-changes flag so a subsequent delete succeeds
func (s *Store) Discard(id domain.BufferID) {
	s.SetModified(id, false)
}

// DetectFiletype maps a file path to a filetype by extension
func DetectFiletype(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return "go"
	case ".md", ".markdown":
		return "markdown"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	case ".txt", "":
		return "text"
	default:
		return "text"
	}
}
