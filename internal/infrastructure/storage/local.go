// Package storage persists voucher attachments on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
)

// LocalStorage writes uploaded files under a base directory, one
// subdirectory per kind of attachment.
type LocalStorage struct {
	basePath string
	maxSize  int64
}

// NewLocalStorage creates a local storage rooted at basePath
func NewLocalStorage(basePath string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, maxSize: maxSize}, nil
}

// SaveAttachment stores an uploaded file and returns its path relative to
// the storage root. The stored name is randomized; only the extension of
// the original filename is kept.
func (s *LocalStorage) SaveAttachment(kind string, file *multipart.FileHeader) (string, error) {
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", apperror.NewUnprocessableError("Attachment exceeds the maximum upload size")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	relPath := filepath.Join(kind, uuid.New().String()+ext)
	fullPath := filepath.Join(s.basePath, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create attachment directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}

	return relPath, nil
}

// Open returns a reader over a stored attachment
func (s *LocalStorage) Open(relPath string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.basePath, filepath.Clean(relPath)))
}
