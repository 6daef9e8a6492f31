package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing embedding record blobs.
type BlobStore interface {
	// Get returns the full contents of the named blob.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put writes a blob atomically, replacing any existing blob of the same name.
	Put(ctx context.Context, name string, data []byte) error

	// Exists reports whether the named blob is present.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns the names of all blobs with the given suffix.
	// An empty suffix matches everything.
	List(ctx context.Context, suffix string) ([]string, error)
}
