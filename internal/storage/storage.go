package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files live. Records persist bare stored
// filenames, so keys here are filenames, not paths or URLs. The local
// filesystem implementation can be swapped for S3 / R2 later.
type Storage interface {
	// Save writes the file under the given stored filename.
	Save(ctx context.Context, filename string, data io.Reader) error

	// Delete removes the file. Deleting a filename that does not exist is
	// not an error.
	Delete(ctx context.Context, filename string) error
}
