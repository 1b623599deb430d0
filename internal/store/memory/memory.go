// Package memory is an in-process store, used when persistence is disabled
// and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/vytor/dialoguedeck/internal/store"
)

type Store struct {
	mu      sync.Mutex
	data    []byte
	saved   bool
	saveErr error
	saves   int
}

// New returns an empty store. Pass initial data to simulate a previous run.
func New(initial []byte) *Store {
	s := &Store{}
	if initial != nil {
		s.data = append([]byte(nil), initial...)
		s.saved = true
	}
	return s
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data = append([]byte(nil), data...)
	s.saved = true
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (s *Store) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves reports how many times Save was called.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Bytes returns a copy of the stored payload.
func (s *Store) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}
