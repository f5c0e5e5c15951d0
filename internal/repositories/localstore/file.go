package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/decred/slog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds configuration for the file-backed store
type Config struct {
	// Path of the JSON document
	Path string
}

// fileStore keeps every key in one flat JSON object on disk
type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a JSON file store. The file is created on first write.
func NewFile(cfg *Config) (*fileStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	return &fileStore{
		path: cfg.Path,
	}, nil
}

// OpenFile returns the file store, or a session-only memory store when the
// file store cannot be opened
func OpenFile(cfg *Config, log slog.Logger) Store {
	store, err := NewFile(cfg)
	if err != nil {
		if log != nil {
			log.Warnf("Local store unavailable, using memory: %v", err)
		}
		return NewMemory()
	}
	return store
}

// Get reads a key from the document
func (f *fileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return "", false, err
	}

	res := gjson.GetBytes(data, escapePath(key))
	if !res.Exists() {
		return "", false, nil
	}
	return res.String(), true, nil
}

// Set writes a key into the document
func (f *fileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}

	out, err := sjson.SetBytes(data, escapePath(key), value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return f.write(out)
}

// Delete removes a key from the document
func (f *fileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}

	out, err := sjson.DeleteBytes(data, escapePath(key))
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return f.write(out)
}

func (f *fileStore) read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	if len(data) == 0 || !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("store %s is not valid JSON", f.path)
	}
	return data, nil
}

// write replaces the document through a temp file so readers never see a partial file
func (f *fileStore) write(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

// escapePath makes a flat key safe for gjson/sjson path syntax
func escapePath(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}
