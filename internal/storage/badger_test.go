package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"docuvault/internal/config"

	"github.com/stretchr/testify/require"
)

func TestBadgerStorage_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewBadgerStorage("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Save(ctx, "key1", strings.NewReader("payload"), 7, "text/plain"))

	rc, err := store.Get(ctx, "key1")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "payload", string(body))

	require.NoError(t, store.Delete(ctx, "key1"))
	_, err = store.Get(ctx, "key1")
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestBadgerStorage_OnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewBadgerStorage(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "persisted", strings.NewReader("still here"), 10, ""))
	require.NoError(t, store.Close())

	reopened, err := NewBadgerStorage(dir)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	rc, err := reopened.Get(ctx, "persisted")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "still here", string(body))
}

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()

	local, err := New(ctx, config.StorageConfig{Type: "local", Path: t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, "local", local.Name())

	bs, err := New(ctx, config.StorageConfig{Type: "badger", Path: t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, "badger", bs.Name())
	require.NoError(t, bs.(io.Closer).Close())

	s3s, err := New(ctx, config.StorageConfig{Type: "s3", S3: config.S3Config{
		Endpoint: "http://localhost:9000", Region: "us-east-1", Bucket: "docuvault",
	}})
	require.NoError(t, err)
	require.Equal(t, "s3", s3s.Name())

	_, err = New(ctx, config.StorageConfig{Type: "s3"})
	require.Error(t, err)

	_, err = New(ctx, config.StorageConfig{Type: "floppy"})
	require.Error(t, err)
}
