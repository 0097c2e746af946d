// Package kv defines the persistent key-value store contract and its
// backends. Values are opaque byte slices (JSON documents in practice) and
// writes replace the whole value — there are no partial updates, no
// compare-and-swap, and no locking; the last writer wins.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kv: key not found")

// Store is the durable key-value storage contract. Implementations must
// survive process restarts (the memory backend is the deliberate exception,
// used for tests and ephemeral runs).
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
