// Package storage holds attachment blobs. The ticket aggregate only keeps
// metadata and a URL; the bytes live behind a BlobStore.
package storage

import (
	"context"
	"io"

	apperrors "clientsolve/internal/shared/errors"
)

// BlobStore persists attachment content under a caller-chosen key and
// returns the URL recorded on the ticket.
type BlobStore interface {
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// checkSize guards the per-attachment upload cap shared by all stores.
func checkSize(size, maxBytes int64) error {
	if maxBytes > 0 && size > maxBytes {
		return apperrors.NewConstraintError("attachment exceeds the maximum allowed size")
	}
	return nil
}
