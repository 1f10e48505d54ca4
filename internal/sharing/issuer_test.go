package sharing

import (
	"context"
	"testing"
	"time"

	"docuvault/internal/database"
	"docuvault/internal/database/memstore"
	"docuvault/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Issuer, *memstore.Store, uuid.UUID) {
	t.Helper()
	store := memstore.New()
	owner := uuid.New()
	_, err := store.CreateFile(context.Background(), database.CreateFileParams{
		ID: "file1", OwnerID: owner, Name: "report.pdf", MimeType: "application/pdf", SizeBytes: 10,
	})
	require.NoError(t, err)
	return NewIssuer(store, "https://vault.example.com/"), store, owner
}

func TestCreateAndResolve(t *testing.T) {
	issuer, _, owner := setup(t)
	ctx := context.Background()

	link, err := issuer.CreateShareLink(ctx, owner, "file1", nil)
	require.NoError(t, err)
	require.Len(t, link.Token, TokenLength)
	require.Equal(t, "https://vault.example.com/shared/"+link.Token, link.ShareLink)
	require.Nil(t, link.ExpiresAt)

	file, err := issuer.Resolve(ctx, link.Token)
	require.NoError(t, err)
	require.Equal(t, "file1", file.ID)
}

func TestNewLinkReplacesOld(t *testing.T) {
	issuer, _, owner := setup(t)
	ctx := context.Background()

	first, err := issuer.CreateShareLink(ctx, owner, "file1", nil)
	require.NoError(t, err)
	second, err := issuer.CreateShareLink(ctx, owner, "file1", nil)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, err = issuer.Resolve(ctx, first.Token)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = issuer.Resolve(ctx, second.Token)
	require.NoError(t, err)
}

func TestShareRequiresOwnership(t *testing.T) {
	issuer, _, _ := setup(t)

	_, err := issuer.CreateShareLink(context.Background(), uuid.New(), "file1", nil)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = issuer.CreateShareLink(context.Background(), uuid.New(), "missing", nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpiry(t *testing.T) {
	issuer, _, owner := setup(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	_, err := issuer.CreateShareLink(ctx, owner, "file1", &past)
	require.ErrorIs(t, err, domain.ErrValidation)

	soon := time.Now().UTC().Add(time.Hour)
	link, err := issuer.CreateShareLink(ctx, owner, "file1", &soon)
	require.NoError(t, err)
	require.Equal(t, soon, *link.ExpiresAt)

	_, err = issuer.Resolve(ctx, link.Token)
	require.NoError(t, err)

	issuer.now = func() time.Time { return soon.Add(time.Second) }
	_, err = issuer.Resolve(ctx, link.Token)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrashedFileIsNotShared(t *testing.T) {
	issuer, store, owner := setup(t)
	ctx := context.Background()

	link, err := issuer.CreateShareLink(ctx, owner, "file1", nil)
	require.NoError(t, err)

	stamp := time.Now()
	_, err = store.SetFileTrashed(ctx, "file1", owner, &stamp)
	require.NoError(t, err)

	_, err = issuer.Resolve(ctx, link.Token)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRevoke(t *testing.T) {
	issuer, _, owner := setup(t)
	ctx := context.Background()

	link, err := issuer.CreateShareLink(ctx, owner, "file1", nil)
	require.NoError(t, err)

	require.ErrorIs(t, issuer.Revoke(ctx, uuid.New(), "file1"), domain.ErrNotFound)
	require.NoError(t, issuer.Revoke(ctx, owner, "file1"))

	_, err = issuer.Resolve(ctx, link.Token)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = issuer.Resolve(ctx, "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
