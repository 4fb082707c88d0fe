package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"veggiemarket/internal/domain/repository"

	"github.com/pkg/errors"
)

// fileStore is a BlobStore writing one file per key under a data directory.
// This is the durable local storage used by default deployments.
type fileStore struct {
	dir string
}

// NewFileStore creates (if needed) the data directory and returns a file-backed store.
func NewFileStore(dir string) (repository.BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %s", dir)
	}

	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrBlobNotFound
		}

		return nil, errors.Wrapf(err, "failed to read blob %s", key)
	}

	return payload, nil
}

// Set writes through a temp file and renames so readers never observe a
// partially written payload.
func (s *fileStore) Set(_ context.Context, key string, payload []byte) error {
	target := s.path(key)

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrapf(err, "failed to close blob %s", key)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)

		return errors.Wrapf(err, "failed to store blob %s", key)
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// path maps a key to a file name. Keys are "{namespace}_{scopeKey}" where the
// scope is a UUID or the guest sentinel, but path separators are stripped
// anyway so a hostile key can never escape the data directory.
func (s *fileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)

	return filepath.Join(s.dir, safe+".json")
}
