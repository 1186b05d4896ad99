// Package storage is the key-value substrate holding the listing, offer and
// settings documents. Values are opaque JSON blobs; the last writer wins.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	// Get returns ErrNotFound when the key has never been written
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
