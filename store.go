package ttynamed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Store persists bindings across invocations. Put overwrites any existing
// binding with the same name; Get and Delete return ErrNameNotBound for
// unknown names.
type Store interface {
	Get(name string) (Binding, error)
	Put(binding Binding) error
	Delete(name string) error
	Names() ([]string, error)
}

// FileStore keeps bindings in a single TOML file. Updates are written to a
// temporary file in the same directory and renamed into place, so a
// concurrent reader never observes a half-written store.
type FileStore struct {
	path string
}

// Ensure FileStore implements Store at compile time
var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath returns the per-user location of the binding store,
// e.g. ~/.config/ttynamed/devices.toml.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "ttynamed", "devices.toml"), nil
}

// storeFile is the on-disk document layout.
type storeFile struct {
	Devices map[string]Criteria `toml:"devices"`
}

func (s *FileStore) load() (storeFile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return storeFile{Devices: map[string]Criteria{}}, nil
	}
	if err != nil {
		return storeFile{}, fmt.Errorf("reading store %s: %w", s.path, err)
	}

	var doc storeFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return storeFile{}, fmt.Errorf("parsing store %s: %w", s.path, err)
	}
	if doc.Devices == nil {
		doc.Devices = map[string]Criteria{}
	}
	return doc, nil
}

func (s *FileStore) save(doc storeFile) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".devices-*.toml")
	if err != nil {
		return fmt.Errorf("creating temporary store: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

func (s *FileStore) Get(name string) (Binding, error) {
	doc, err := s.load()
	if err != nil {
		return Binding{}, err
	}
	criteria, ok := doc.Devices[name]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %s", ErrNameNotBound, name)
	}
	return Binding{Name: name, Criteria: criteria}, nil
}

func (s *FileStore) Put(binding Binding) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Devices[binding.Name] = binding.Criteria
	return s.save(doc)
}

func (s *FileStore) Delete(name string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Devices[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNameNotBound, name)
	}
	delete(doc.Devices, name)
	return s.save(doc)
}

func (s *FileStore) Names() ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.Devices))
	for name := range doc.Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
