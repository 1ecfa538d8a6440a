// Package fsx abstracts remote object storage behind a filesystem-shaped
// interface.
package fsx

import (
	"context"
	"io"
)

// FileSystem is the storage contract consumed by services. Paths are
// forward-slash keys relative to the backend's configured root.
type FileSystem interface {
	// Join builds a storage path from segments.
	Join(parts ...string) string

	// WriteFile stores data at path, overwriting any existing object.
	WriteFile(ctx context.Context, path string, data []byte) error

	// WriteFileStream stores the contents of r at path.
	WriteFileStream(ctx context.Context, path string, r io.Reader) error

	// ReadFileStream opens the object at path for reading.
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the object at path.
	DeleteFile(ctx context.Context, path string) error

	// URL returns a retrievable URL for the object at path.
	URL(path string) string
}
