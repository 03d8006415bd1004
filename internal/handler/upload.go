package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/myagency/backend/internal/storage"
)

const maxUploadSize = 10 << 20 // 10 MB

// ErrNoFile is returned by FromRequest when the request carries no file for
// the field. Callers decide whether that is acceptable.
var ErrNoFile = errors.New("no file in request")

// Uploader stores multipart uploads under collision-resistant filenames.
type Uploader struct {
	store storage.Storage
}

// NewUploader creates an Uploader writing through the given storage.
func NewUploader(store storage.Storage) *Uploader {
	return &Uploader{store: store}
}

// storedName builds the stored filename: field prefix, nanosecond timestamp,
// random disambiguator, original extension. The timestamp plus UUID keeps
// concurrent uploads in the same clock tick from colliding.
func storedName(field, original string) string {
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixNano(), uuid.NewString(), filepath.Ext(original))
}

// FromRequest reads the named multipart file field, stores it, and returns
// the stored filename. Returns ErrNoFile when the field is absent.
func (u *Uploader) FromRequest(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", ErrNoFile
		}
		return "", fmt.Errorf("upload: read %s: %w", field, err)
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return "", fmt.Errorf("upload: %s exceeds %d bytes", field, maxUploadSize)
	}

	name := storedName(field, header.Filename)
	if err := u.store.Save(r.Context(), name, file); err != nil {
		return "", fmt.Errorf("upload: store %s: %w", field, err)
	}
	return name, nil
}

// Remove deletes a stored file, used both for rolling back a fresh upload
// when the database write fails and for dropping a replaced or orphaned file.
// Best-effort: a missing file is not an error.
func (u *Uploader) Remove(ctx context.Context, filename string) error {
	if filename == "" {
		return nil
	}
	return u.store.Delete(ctx, filename)
}
