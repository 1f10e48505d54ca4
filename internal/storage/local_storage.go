package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) Name() string { return "local" }

// getPathFromKey fans objects out over two directory levels taken from the
// start of the key, so no single directory grows unbounded.
func (ls *LocalStorage) getPathFromKey(key string) string {
	if len(key) < 4 {
		return filepath.Join(ls.basePath, key)
	}
	return filepath.Join(ls.basePath, key[:2], key[2:4], key)
}

func (ls *LocalStorage) Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	filePath := ls.getPathFromKey(key)
	dir := filepath.Dir(filePath)

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filePath)
}

func (ls *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	file, err := os.Open(ls.getPathFromKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file with key %s: %w", key, ErrObjectNotFound)
		}
		return nil, err
	}

	return file, nil
}

func (ls *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	err := os.Remove(ls.getPathFromKey(key))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}
