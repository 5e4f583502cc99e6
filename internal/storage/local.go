package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalFileStore implements FileStore on the local filesystem, with the
// server itself playing the part of the object store. Presigned URLs point
// back at the server's upload/download handlers and carry the object key as
// a query parameter.
type LocalFileStore struct {
	baseURL      string
	documentsDir string
}

func NewLocalFileStore(baseURL, uploadsDir string) (*LocalFileStore, error) {
	documentsDir := filepath.Join(uploadsDir, "documents")
	if err := os.MkdirAll(documentsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create documents directory: %w", err)
	}
	return &LocalFileStore{
		baseURL:      baseURL,
		documentsDir: documentsDir,
	}, nil
}

// NewObjectKey returns a fresh storage key for an uploaded file, keeping
// the original extension.
func NewObjectKey(filename string) string {
	return uuid.New().String() + filepath.Ext(filename)
}

func (s *LocalFileStore) UploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	token := uuid.New().String()
	return fmt.Sprintf("%s/api/v1/files/upload/%s?key=%s", s.baseURL, token, url.QueryEscape(key)), nil
}

func (s *LocalFileStore) DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/files/download?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

func (s *LocalFileStore) Exists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(filepath.Join(s.documentsDir, filepath.Base(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalFileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.documentsDir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// DeleteURL extracts the object key from a previously issued URL and
// deletes the object. URLs issued by other stores are rejected, not
// guessed at.
func (s *LocalFileStore) DeleteURL(ctx context.Context, fileURL string) error {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("unparseable file url: %w", err)
	}
	key := parsed.Query().Get("key")
	if key == "" {
		return fmt.Errorf("file url %q carries no storage key", fileURL)
	}
	return s.Delete(ctx, key)
}

func (s *LocalFileStore) Save(key string, reader io.Reader) error {
	fullPath := filepath.Join(s.documentsDir, filepath.Base(key))

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalFileStore) Open(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.documentsDir, filepath.Base(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
