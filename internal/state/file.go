package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps values in a YAML file, one file per site. The file is read
// once on first access and rewritten on every change.
type FileStore struct {
	path   string
	mu     sync.Mutex
	loaded bool
	values map[string]string
}

// NewFileStore returns a store backed by <dir>/<siteID>.yaml.
func NewFileStore(dir, siteID string) *FileStore {
	return &FileStore{path: filepath.Join(dir, siteID+".yaml")}
}

// Path is the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the value stored under key.
func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return "", false, err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

// Set stores value under key and writes the file.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}
	if cur, ok := f.values[key]; ok && cur == value {
		return nil
	}
	f.values[key] = value
	return f.save()
}

// Delete removes key and writes the file.
func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.save()
}

func (f *FileStore) load() error {
	if f.loaded {
		return nil
	}
	values := make(map[string]string)
	data, err := os.ReadFile(f.path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("error reading state file %s: %w", f.path, err)
	default:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("error parsing state file %s: %w", f.path, err)
		}
		if values == nil {
			values = make(map[string]string)
		}
	}
	f.values = values
	f.loaded = true
	return nil
}

func (f *FileStore) save() error {
	data, err := yaml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("error encoding state: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating state directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("error creating temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error writing state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing state file %s: %w", f.path, err)
	}
	return nil
}
