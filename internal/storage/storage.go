// Package storage keeps uploaded file contents, addressed by an opaque key.
// Metadata lives in the database; a ContentStore only sees bytes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"docuvault/internal/config"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidKey     = errors.New("invalid storage key")
)

type ContentStore interface {
	Name() string
	Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// New builds the content store selected by cfg.Type.
func New(ctx context.Context, cfg config.StorageConfig) (ContentStore, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg.Path)
	case "s3":
		return NewS3Storage(ctx, cfg.S3)
	case "badger":
		return NewBadgerStorage(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
