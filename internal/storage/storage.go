// Package storage persists captured media artifacts (GIF loops, WAV
// soundtracks) in an S3-compatible object store and hands back retrievable
// URLs.
package storage

import (
	"context"
	"io"
)

// ObjectStorage is the capture sink's view of the object store.
type ObjectStorage interface {
	// Upload stores an object under key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// GetURL returns the retrievable URL for a stored object.
	GetURL(key string) string

	// Exists reports whether an object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes an object.
	Delete(ctx context.Context, key string) error
}
