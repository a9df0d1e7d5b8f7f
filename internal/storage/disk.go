package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store accepts a single binary attachment and reports the stored filename.
type Store interface {
	Save(src io.Reader, originalName string) (string, error)
}

// DiskStore writes uploads to a local directory under generated names.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Save stores the attachment under a random name, keeping the original
// extension so browsers can still content-type the file.
func (s *DiskStore) Save(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
