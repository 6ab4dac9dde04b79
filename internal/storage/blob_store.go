package storage

import (
	"context"
	"errors"
)

// BlobStore keeps one serialized value per key.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte) error

	Delete(ctx context.Context, key string) error
}

var ErrBlobNotFound = errors.New("no value stored for key")
