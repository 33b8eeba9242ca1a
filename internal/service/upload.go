package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/willowworks/batrack/internal/storage"
	"github.com/willowworks/batrack/internal/validation"
)

// UploadService validates and stores listing images. Stored names combine
// the form field name with a nanosecond timestamp, so concurrent uploads
// never collide.
type UploadService struct {
	storage storage.Storage
}

func NewUploadService(storage storage.Storage) *UploadService {
	return &UploadService{
		storage: storage,
	}
}

// Accept validates the upload and writes it to storage, returning the stored
// path for embedding in a listing record.
func (s *UploadService) Accept(fieldName string, header *multipart.FileHeader) (string, error) {
	err := validation.ValidateImage(header)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("%s-%d%s", fieldName, time.Now().UnixNano(), ext)

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	err = s.storage.Save(path, file)
	if err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	return path, nil
}

// Remove deletes a stored image. Missing files are treated as success so
// compensating cleanup after a failed listing create can never fail on an
// already-gone file.
func (s *UploadService) Remove(path string) error {
	if path == "" {
		return nil
	}

	err := s.storage.Delete(path)
	if err != nil {
		slog.Error("failed to remove stored image", "error", err, "path", path)
		return err
	}

	return nil
}

// Exists reports whether the stored image is still present.
func (s *UploadService) Exists(path string) bool {
	return s.storage.Exists(path)
}

// URL returns the address the stored image is served from.
func (s *UploadService) URL(path string) string {
	return s.storage.URL(path)
}
