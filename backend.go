package budgety

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend is the key-value contract the store persists collections through.
// Values are opaque serialized blobs; a Set replaces the whole value for the
// key. Clear wipes every key (full reset).
type Backend interface {
	// Get returns the stored value, or found=false when the key is absent.
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
	Clear() error
}

// DirBackend stores each key as one JSON file in a directory.
type DirBackend struct {
	dir string
}

// NewDirBackend creates the backing directory if needed and returns a backend
// over it.
func NewDirBackend(dir string) (*DirBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &DirBackend{dir: dir}, nil
}

func (b *DirBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *DirBackend) Get(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", b.path(key), err)
	}
	return raw, true, nil
}

func (b *DirBackend) Set(key string, value []byte) error {
	if err := os.WriteFile(b.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", b.path(key), err)
	}
	return nil
}

func (b *DirBackend) Remove(key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove %q: %w", b.path(key), err)
	}
	return nil
}

func (b *DirBackend) Clear() error {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return fmt.Errorf("could not list data directory %q: %w", b.dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(b.dir, e.Name())); err != nil {
			return fmt.Errorf("could not remove %q: %w", e.Name(), err)
		}
	}
	return nil
}

// MemBackend is an in-memory Backend, mostly useful in tests.
type MemBackend struct {
	values map[string][]byte
}

// NewMemBackend returns an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{values: make(map[string][]byte)}
}

func (b *MemBackend) Get(key string) ([]byte, bool, error) {
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *MemBackend) Set(key string, value []byte) error {
	b.values[key] = append([]byte(nil), value...)
	return nil
}

func (b *MemBackend) Remove(key string) error {
	delete(b.values, key)
	return nil
}

func (b *MemBackend) Clear() error {
	b.values = make(map[string][]byte)
	return nil
}
