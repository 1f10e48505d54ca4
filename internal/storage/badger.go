package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dgraph-io/badger/v4"
)

const blobPrefix = "blob:"

// BadgerStorage keeps file contents in an embedded badger database. It suits
// single-node deployments with modest file sizes.
type BadgerStorage struct {
	db *badger.DB
}

// NewBadgerStorage opens (or creates) the database at path. An empty path
// keeps everything in memory.
func NewBadgerStorage(path string) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStorage{db: db}, nil
}

func (b *BadgerStorage) Name() string { return "badger" }

func blobKey(key string) []byte {
	return []byte(blobPrefix + key)
}

func (b *BadgerStorage) Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	body, err := io.ReadAll(data)
	if err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blobKey(key), body)
	})
}

func (b *BadgerStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var body []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blobKey(key))
		if err != nil {
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("object %s: %w", key, ErrObjectNotFound)
	}
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(body)), nil
}

func (b *BadgerStorage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(blobKey(key))
	})
}

func (b *BadgerStorage) Close() error {
	return b.db.Close()
}
