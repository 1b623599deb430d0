// Package file keeps the serialized collection in a single file on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vytor/dialoguedeck/internal/logger"
	"github.com/vytor/dialoguedeck/internal/store"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).WithPrefix("file_store")

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("no file at %s", s.path)
		return nil, store.ErrNotFound
	}
	if err != nil {
		log.Error("failed to read %s: %v", s.path, err)
		return nil, err
	}
	log.Debug("loaded %d bytes from %s", len(data), s.path)
	return data, nil
}

// Save writes to a temporary sibling and renames it over the target, so a
// crash mid-write never leaves a truncated file behind.
func (s *Store) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContext(ctx).WithPrefix("file_store")

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		log.Error("failed to create temp file: %v", err)
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		log.Error("failed to replace %s: %v", s.path, err)
		return err
	}
	log.Debug("saved %d bytes to %s", len(data), s.path)
	return nil
}
