package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage stores images on the local filesystem. Files are served as
// static assets under /uploads/.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	err := os.MkdirAll(root, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

// Root returns the directory images are written to, for static file serving.
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Save(path string, file io.Reader) error {
	dst, err := os.Create(filepath.Join(s.root, filepath.Clean(path)))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(dst, file)
	if err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return fmt.Errorf("failed to write file: %w", err)
	}

	return dst.Close()
}

func (s *LocalStorage) Delete(path string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Clean(path)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(s.root, filepath.Clean(path)))
	return err == nil
}

func (s *LocalStorage) URL(path string) string {
	return "/uploads/" + path
}
