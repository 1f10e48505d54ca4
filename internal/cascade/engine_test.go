package cascade

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"docuvault/internal/database"
	"docuvault/internal/database/memstore"
	"docuvault/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected write failure")

// faultyQuerier fails SetFolderFilesTrashed once it has been called failAfter times.
type faultyQuerier struct {
	database.Querier
	calls     *int
	failAfter int
}

func (f faultyQuerier) SetFolderFilesTrashed(ctx context.Context, folderID string, ownerID uuid.UUID, deletedAt *time.Time) (int64, error) {
	if *f.calls >= f.failAfter {
		return 0, errInjected
	}
	*f.calls++
	return f.Querier.SetFolderFilesTrashed(ctx, folderID, ownerID, deletedAt)
}

type faultyStore struct {
	*memstore.Store
	calls     int
	failAfter int
}

func (s *faultyStore) SetFolderFilesTrashed(ctx context.Context, folderID string, ownerID uuid.UUID, deletedAt *time.Time) (int64, error) {
	return faultyQuerier{Querier: s.Store, calls: &s.calls, failAfter: s.failAfter}.SetFolderFilesTrashed(ctx, folderID, ownerID, deletedAt)
}

func (s *faultyStore) ExecTx(ctx context.Context, fn func(database.Querier) error) error {
	return s.Store.ExecTx(ctx, func(q database.Querier) error {
		return fn(faultyQuerier{Querier: q, calls: &s.calls, failAfter: s.failAfter})
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store *memstore.Store
	owner uuid.UUID
}

func strPtr(s string) *string { return &s }

// newFixture builds root -> (a -> a1, b) with one file in every folder and
// one unfiled file.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{store: memstore.New(), owner: uuid.New()}

	folders := []database.CreateFolderParams{
		{ID: "root", Name: "Root"},
		{ID: "a", ParentID: strPtr("root"), Name: "A"},
		{ID: "b", ParentID: strPtr("root"), Name: "B"},
		{ID: "a1", ParentID: strPtr("a"), Name: "A1"},
		{ID: "elsewhere", Name: "Elsewhere"},
	}
	for _, p := range folders {
		p.OwnerID = f.owner
		_, err := f.store.CreateFolder(ctx, p)
		require.NoError(t, err)
	}

	for _, folderID := range []string{"root", "a", "b", "a1", "elsewhere"} {
		_, err := f.store.CreateFile(ctx, database.CreateFileParams{
			ID: "file-" + folderID, OwnerID: f.owner, FolderID: strPtr(folderID),
			Name: folderID + ".txt", MimeType: "text/plain",
		})
		require.NoError(t, err)
	}
	_, err := f.store.CreateFile(ctx, database.CreateFileParams{
		ID: "file-unfiled", OwnerID: f.owner, Name: "loose.txt", MimeType: "text/plain",
	})
	require.NoError(t, err)

	return f
}

func (f *fixture) folderDeleted(t *testing.T, id string) bool {
	folder, err := f.store.GetFolderByID(context.Background(), id, f.owner)
	require.NoError(t, err)
	require.NotNil(t, folder)
	return folder.IsDeleted
}

func (f *fixture) fileDeleted(t *testing.T, id string) bool {
	file, err := f.store.GetFileByID(context.Background(), id, f.owner)
	require.NoError(t, err)
	require.NotNil(t, file)
	return file.IsDeleted
}

func TestSoftDeleteCascadesToSubtree(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.store, Options{}, testLogger())

	res, err := engine.SoftDelete(context.Background(), f.owner, "root")
	require.NoError(t, err)
	require.Equal(t, []string{"root", "a", "b", "a1"}, res.FolderIDs)
	require.EqualValues(t, 4, res.Files)

	for _, id := range []string{"root", "a", "b", "a1"} {
		require.True(t, f.folderDeleted(t, id), id)
		require.True(t, f.fileDeleted(t, "file-"+id), id)
	}
	require.False(t, f.folderDeleted(t, "elsewhere"))
	require.False(t, f.fileDeleted(t, "file-elsewhere"))
	require.False(t, f.fileDeleted(t, "file-unfiled"))
}

func TestSoftDeleteUsesOneTimestamp(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.store, Options{}, testLogger())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return fixed }

	_, err := engine.SoftDelete(context.Background(), f.owner, "a")
	require.NoError(t, err)

	ctx := context.Background()
	for _, id := range []string{"a", "a1"} {
		folder, err := f.store.GetFolderByID(ctx, id, f.owner)
		require.NoError(t, err)
		require.Equal(t, fixed, *folder.DeletedAt)

		file, err := f.store.GetFileByID(ctx, "file-"+id, f.owner)
		require.NoError(t, err)
		require.Equal(t, fixed, *file.DeletedAt)
	}
}

func TestRestoreIsUnconditional(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	engine := NewEngine(f.store, Options{}, testLogger())

	// a1 goes to the trash on its own first, then its ancestor follows.
	_, err := engine.SoftDelete(ctx, f.owner, "a1")
	require.NoError(t, err)
	_, err = engine.SoftDelete(ctx, f.owner, "root")
	require.NoError(t, err)

	_, err = engine.Restore(ctx, f.owner, "root")
	require.NoError(t, err)

	for _, id := range []string{"root", "a", "b", "a1"} {
		require.False(t, f.folderDeleted(t, id), id)
		require.False(t, f.fileDeleted(t, "file-"+id), id)
	}

	folder, err := f.store.GetFolderByID(ctx, "a1", f.owner)
	require.NoError(t, err)
	require.Nil(t, folder.DeletedAt)
}

func TestRestoreRequiresTrashedFolder(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.store, Options{}, testLogger())

	_, err := engine.Restore(context.Background(), f.owner, "root")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "folder not found in trash", nf.Message)
}

func TestCascadeIsOwnerScoped(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.store, Options{}, testLogger())

	_, err := engine.SoftDelete(context.Background(), uuid.New(), "root")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.False(t, f.folderDeleted(t, "root"))
}

func TestNonTransactionalFailureLeavesPartialState(t *testing.T) {
	f := newFixture(t)
	store := &faultyStore{Store: f.store, failAfter: 2}
	engine := NewEngine(store, Options{}, testLogger())

	_, err := engine.SoftDelete(context.Background(), f.owner, "root")
	require.ErrorIs(t, err, errInjected)

	// root and a were fully written before the third folder failed.
	require.True(t, f.folderDeleted(t, "root"))
	require.True(t, f.fileDeleted(t, "file-root"))
	require.True(t, f.folderDeleted(t, "a"))
	require.True(t, f.folderDeleted(t, "b"))
	require.False(t, f.fileDeleted(t, "file-b"))
	require.False(t, f.folderDeleted(t, "a1"))
}

func TestTransactionalFailureLeavesNothing(t *testing.T) {
	f := newFixture(t)
	store := &faultyStore{Store: f.store, failAfter: 2}
	engine := NewEngine(store, Options{InTx: true}, testLogger())

	_, err := engine.SoftDelete(context.Background(), f.owner, "root")
	require.ErrorIs(t, err, errInjected)

	for _, id := range []string{"root", "a", "b", "a1"} {
		require.False(t, f.folderDeleted(t, id), id)
		require.False(t, f.fileDeleted(t, "file-"+id), id)
	}
}

func TestTransactionalCascadeCommits(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.store, Options{InTx: true}, testLogger())

	res, err := engine.SoftDelete(context.Background(), f.owner, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "a1"}, res.FolderIDs)
	require.True(t, f.folderDeleted(t, "a1"))
	require.False(t, f.folderDeleted(t, "root"))
}
