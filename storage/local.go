package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore saves uploads on disk under a single root directory and
// serves them under a URL prefix (normally /uploads).
type LocalStore struct {
	root      string
	urlPrefix string
}

// NewLocalStore creates the upload root if missing. The root is resolved
// to an absolute path once so containment checks are cheap.
func NewLocalStore(root, urlPrefix string) (*LocalStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("upload root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: abs, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Root returns the absolute upload directory.
func (s *LocalStore) Root() string {
	return s.root
}

// Resolve maps a stored identifier to its on-disk path, rejecting any name
// that would escape the upload root.
func (s *LocalStore) Resolve(identifier string) (string, error) {
	if identifier == "" || filepath.Base(identifier) != identifier {
		return "", fmt.Errorf("invalid file name %q", identifier)
	}
	path := filepath.Join(s.root, identifier)
	abs, err := filepath.Abs(path)
	if err != nil || !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid file path %q", identifier)
	}
	return abs, nil
}

// Save writes the upload under a collision-resistant name: a random uuid
// prefix plus the sanitized original name.
func (s *LocalStore) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (SavedFile, error) {
	stored := uuid.New().String() + "_" + SafeFilename(filename)
	path, err := s.Resolve(stored)
	if err != nil {
		return SavedFile{}, err
	}

	out, err := os.Create(path)
	if err != nil {
		return SavedFile{}, fmt.Errorf("create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		os.Remove(path)
		return SavedFile{}, fmt.Errorf("write file: %w", err)
	}

	return SavedFile{
		Identifier:   stored,
		URL:          s.urlPrefix + "/" + stored,
		OriginalName: SafeFilename(filename),
	}, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *LocalStore) Remove(ctx context.Context, identifier string) error {
	path, err := s.Resolve(identifier)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
