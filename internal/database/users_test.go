package database

import (
	"context"
	"testing"
	"time"

	"docuvault/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T) *models.User {
	t.Helper()
	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		ID:           uuid.New(),
		Email:        "user-" + uuid.NewString() + "@example.com",
		Name:         "Test User",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)
	require.NotZero(t, user.CreatedAt)

	byID, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, byID.Email)

	byEmail, err := testStore.GetUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	missing, err := testStore.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = testStore.CreateUser(ctx, CreateUserParams{
		ID:           uuid.New(),
		Email:        user.Email,
		Name:         "Someone Else",
		PasswordHash: "hash",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestResetTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)
	now := time.Now().UTC()

	require.NoError(t, testStore.SetResetToken(ctx, user.ID, "hash-"+user.ID.String(), now.Add(time.Hour)))

	ok, err := testStore.ConsumeResetToken(ctx, "hash-"+user.ID.String(), "new-hash", now)
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", updated.PasswordHash)
	require.Nil(t, updated.ResetTokenHash)

	ok, err = testStore.ConsumeResetToken(ctx, "hash-"+user.ID.String(), "newer-hash", now)
	require.NoError(t, err)
	require.False(t, ok, "tokens are single-use")
}

func TestExpiredResetTokenIsCleared(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)
	now := time.Now().UTC()
	tokenHash := "expired-" + user.ID.String()

	require.NoError(t, testStore.SetResetToken(ctx, user.ID, tokenHash, now.Add(-time.Minute)))

	ok, err := testStore.ConsumeResetToken(ctx, tokenHash, "new-hash", now)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, testStore.ClearExpiredResetToken(ctx, tokenHash, now))

	updated, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, updated.ResetTokenHash)
	require.Nil(t, updated.ResetExpiresAt)
	require.Equal(t, "hash", updated.PasswordHash)
}
