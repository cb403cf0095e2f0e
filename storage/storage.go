// Package storage handles uploaded file validation, persistence and
// cleanup. Two backends exist: local disk under the upload root (served
// at /uploads) and a MinIO/S3 bucket for report documents.
package storage

import (
	"context"
	"io"
	"log"
)

// SavedFile describes a stored upload. Identifier is what Remove needs
// later; URL is what clients fetch.
type SavedFile struct {
	Identifier   string
	URL          string
	OriginalName string
}

// Backend stores and removes uploaded bytes. Remove is idempotent: a
// missing object is not an error.
type Backend interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (SavedFile, error)
	Remove(ctx context.Context, identifier string) error
}

// CleanupResult reports a best-effort batch removal. Failed identifiers
// are orphaned objects an operator can reconcile later; they never block
// metadata deletion.
type CleanupResult struct {
	Removed []string
	Failed  []string
}

// OK reports whether every object was removed.
func (c CleanupResult) OK() bool {
	return len(c.Failed) == 0
}

// RemoveAll deletes each identifier from the backend, logging and
// collecting failures instead of stopping.
func RemoveAll(ctx context.Context, b Backend, identifiers []string) CleanupResult {
	var result CleanupResult
	for _, id := range identifiers {
		if id == "" {
			continue
		}
		if err := b.Remove(ctx, id); err != nil {
			log.Printf("storage: failed to remove %s: %v", id, err)
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Removed = append(result.Removed, id)
	}
	return result
}
