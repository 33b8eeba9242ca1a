package storage

import (
	"io"

	cfg "github.com/willowworks/batrack/internal/config"
)

// Storage defines the interface for image storage operations.
type Storage interface {
	// Save stores a file at the given path
	Save(path string, file io.Reader) error

	// Delete removes a file at the given path. Deleting a missing file is
	// not an error; callers rely on this for cleanup paths.
	Delete(path string) error

	// Exists reports whether a file is present at the given path
	Exists(path string) bool

	// URL returns the URL under which the file is served
	URL(path string) string
}

// New selects the storage backend from config: S3-compatible object storage
// when the S3 block is configured, local disk otherwise.
func New(c *cfg.Config) (Storage, error) {
	if c.UseS3() {
		return NewS3Storage(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
		})
	}
	return NewLocalStorage(c.UploadDir)
}
