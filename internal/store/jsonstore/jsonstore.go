package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed storage. One file per key, human-readable, portable.
// No locking; fine for a local single-user app.

// Store keeps each key in <Dir>/<key>.json.
type Store struct {
	Dir string
}

func New(dir string) *Store { return &Store{Dir: dir} }

func (s *Store) path(key string) (string, error) {
	if key == "" || filepath.Base(key) != key {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

// Get returns ok=false when no value has been written yet.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read file: %w", err)
	}
	return string(b), true, nil
}

// Set replaces the value through a temp file and rename so a reader
// never observes a half-written list.
func (s *Store) Set(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
