package database

import (
	"context"
	"testing"
	"time"

	"docuvault/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, ownerID uuid.UUID, folderID *string, name string) *models.File {
	t.Helper()
	id := testID()
	file, err := testStore.CreateFile(context.Background(), CreateFileParams{
		ID:           id,
		OwnerID:      ownerID,
		FolderID:     folderID,
		Name:         name,
		OriginalName: name,
		StorageKey:   id,
		SizeBytes:    42,
		MimeType:     "text/plain",
	})
	require.NoError(t, err)
	require.NotNil(t, file)
	return file
}

func TestCreateAndGetFile(t *testing.T) {
	ctx := context.Background()
	owner := createRandomUser(t)
	stranger := createRandomUser(t)

	file := createTestFile(t, owner.ID, nil, "a.txt")
	require.Equal(t, int64(42), file.SizeBytes)
	require.False(t, file.IsFavorite)
	require.Nil(t, file.ShareToken)

	found, err := testStore.GetFileByID(ctx, file.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, file.StorageKey, found.StorageKey)

	found, err = testStore.GetFileByID(ctx, file.ID, stranger.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestUpdateFileOnlyTouchesGivenFields(t *testing.T) {
	ctx := context.Background()
	owner := createRandomUser(t)
	folder := createTestFolder(t, owner.ID, nil, "Box")
	file := createTestFile(t, owner.ID, &folder.ID, "before.txt")

	fav := true
	updated, err := testStore.UpdateFile(ctx, file.ID, owner.ID, UpdateFileParams{IsFavorite: &fav})
	require.NoError(t, err)
	require.True(t, updated.IsFavorite)
	require.Equal(t, "before.txt", updated.Name)
	require.Equal(t, folder.ID, *updated.FolderID)

	name := "after.txt"
	updated, err = testStore.UpdateFile(ctx, file.ID, owner.ID, UpdateFileParams{Name: &name, SetFolder: true})
	require.NoError(t, err)
	require.Equal(t, "after.txt", updated.Name)
	require.Nil(t, updated.FolderID)
	require.True(t, updated.IsFavorite)
}

func TestTrashFilesInFolder(t *testing.T) {
	ctx := context.Background()
	owner := createRandomUser(t)
	folder := createTestFolder(t, owner.ID, nil, "Bulk")
	createTestFile(t, owner.ID, &folder.ID, "one.txt")
	createTestFile(t, owner.ID, &folder.ID, "two.txt")
	loose := createTestFile(t, owner.ID, nil, "loose.txt")

	stamp := time.Now().UTC()
	n, err := testStore.SetFolderFilesTrashed(ctx, folder.ID, owner.ID, &stamp)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	inFolder, err := testStore.ListFilesInFolder(ctx, owner.ID, folder.ID)
	require.NoError(t, err)
	require.Empty(t, inFolder)

	active, err := testStore.ListFiles(ctx, owner.ID, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, loose.ID, active[0].ID)

	trashed, err := testStore.ListFiles(ctx, owner.ID, true)
	require.NoError(t, err)
	require.Len(t, trashed, 2)

	n, err = testStore.SetFolderFilesTrashed(ctx, folder.ID, owner.ID, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestShareTokens(t *testing.T) {
	ctx := context.Background()
	owner := createRandomUser(t)
	first := createTestFile(t, owner.ID, nil, "first.txt")
	second := createTestFile(t, owner.ID, nil, "second.txt")

	token := "token-" + uuid.NewString()
	expiresAt := time.Now().Add(time.Hour).UTC()
	shared, err := testStore.SetShareToken(ctx, first.ID, owner.ID, &token, &expiresAt)
	require.NoError(t, err)
	require.Equal(t, token, *shared.ShareToken)

	found, err := testStore.GetFileByShareToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, first.ID, found.ID)

	_, err = testStore.SetShareToken(ctx, second.ID, owner.ID, &token, nil)
	require.ErrorIs(t, err, ErrShareTokenTaken)

	revoked, err := testStore.SetShareToken(ctx, first.ID, owner.ID, nil, nil)
	require.NoError(t, err)
	require.Nil(t, revoked.ShareToken)
	require.Nil(t, revoked.ShareExpiresAt)

	found, err = testStore.GetFileByShareToken(ctx, token)
	require.NoError(t, err)
	require.Nil(t, found)
}
