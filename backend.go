package networth

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Backend is the pluggable persistence layer of the store. A key maps to
// one opaque payload, the serialized document. Get must report a key that
// was never written with an error matching fs.ErrNotExist.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// FileBackend persists each key as a file in a directory. This is the
// production backend.
type FileBackend struct {
	Dir string
}

func (b FileBackend) Get(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(b.Dir, key))
}

// Set writes to a temporary file and renames it over the target, so a
// crashed write never leaves a truncated document behind.
func (b FileBackend) Set(key string, value []byte) error {
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", b.Dir, err)
	}
	path := filepath.Join(b.Dir, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("cannot replace %q: %w", path, err)
	}
	return nil
}

// MemoryBackend keeps payloads in memory. It backs tests and any caller
// that wants a throwaway store.
type MemoryBackend struct {
	values map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(key string) ([]byte, error) {
	v, ok := b.values[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return slices.Clone(v), nil
}

func (b *MemoryBackend) Set(key string, value []byte) error {
	b.values[key] = slices.Clone(value)
	return nil
}
