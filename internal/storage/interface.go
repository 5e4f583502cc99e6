package storage

import (
	"context"
	"io"
	"time"
)

// FileStore is the document/photo/video storage collaborator. Workflow
// services treat deletes as best-effort: a failed release is logged and the
// metadata update proceeds.
type FileStore interface {
	// UploadURL generates a presigned URL a client PUTs the file to.
	UploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// DownloadURL generates a presigned URL for fetching the file.
	DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// Exists checks presence and returns the stored size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the object; deleting an absent object is a no-op.
	Delete(ctx context.Context, key string) error

	// DeleteURL releases the object a previously issued URL points at.
	DeleteURL(ctx context.Context, url string) error

	// Save and Open back the local implementation's HTTP handlers.
	Save(key string, reader io.Reader) error
	Open(key string) (io.ReadCloser, error)
}
