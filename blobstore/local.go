package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hupe1980/facestore/internal/fs"
	"github.com/hupe1980/facestore/internal/mmap"
)

// LocalStore implements BlobStore using the local file system, one file per
// blob under a root directory.
//
// Reads map the file directly; writes go to a uniquely named temp file in
// the same directory and are renamed into place, so concurrent readers of a
// name never observe a partial write.
type LocalStore struct {
	root string
	fs   fs.FileSystem
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// The directory is created lazily on the first Put.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root, fs: fs.Default}
}

// newLocalStoreFS creates a LocalStore with a custom file system for
// fault-injection tests.
func newLocalStoreFS(root string, fsys fs.FileSystem) *LocalStore {
	return &LocalStore{root: root, fs: fsys}
}

// Get returns the full contents of the named blob.
func (s *LocalStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	defer m.Close()

	// Copy out so the mapping can be released before decode.
	data := make([]byte, len(m.Bytes()))
	copy(data, m.Bytes())
	return data, nil
}

// Put writes a blob atomically, replacing any existing blob of the same name.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(s.root, 0750); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	path := filepath.Join(s.root, name)
	tmpPath := path + ".tmp-" + uuid.NewString()

	f, err := s.fs.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp blob: %w", err)
	}

	if err := s.writeAndClose(f, data); err != nil {
		_ = s.fs.Remove(tmpPath)
		return err
	}

	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp blob: %w", err)
	}
	return nil
}

func (s *LocalStore) writeAndClose(f fs.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to sync blob: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close blob: %w", err)
	}
	return nil
}

// Exists reports whether the named blob is present.
func (s *LocalStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := s.fs.Stat(filepath.Join(s.root, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns the names of all blobs with the given suffix.
func (s *LocalStore) List(ctx context.Context, suffix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(s.root)
	if err != nil {
		// A store that was never written to has no directory yet.
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if suffix != "" && !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
