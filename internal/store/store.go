// Package store defines the durable key-value medium the deck collection is
// saved to. Sub packages implement it with different backends.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("no stored collection")

// Store persists one serialized collection under a fixed key.
type Store interface {
	// Load returns the last saved payload, or ErrNotFound.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored payload.
	Save(ctx context.Context, data []byte) error
}
