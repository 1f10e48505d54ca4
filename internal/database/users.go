package database

import (
	"context"
	"errors"
	"time"

	"docuvault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, password_hash, reset_token_hash, reset_expires_at, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.ResetTokenHash,
		&user.ResetExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	user, err := scanUser(q.db.QueryRow(ctx, query, arg.ID, arg.Email, arg.Name, arg.PasswordHash))
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.db.QueryRow(ctx, query, email))
}

func (q *Queries) SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET reset_token_hash = $2, reset_expires_at = $3, updated_at = now()
		WHERE id = $1
	`
	_, err := q.db.Exec(ctx, query, userID, tokenHash, expiresAt)
	return err
}

// ConsumeResetToken swaps in a new password hash and clears the reset token
// in one statement, so a token can be used at most once.
func (q *Queries) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $2, reset_token_hash = NULL, reset_expires_at = NULL, updated_at = now()
		WHERE reset_token_hash = $1 AND reset_expires_at > $3
	`
	res, err := q.db.Exec(ctx, query, tokenHash, passwordHash, now)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() == 1, nil
}

func (q *Queries) ClearExpiredResetToken(ctx context.Context, tokenHash string, now time.Time) error {
	query := `
		UPDATE users
		SET reset_token_hash = NULL, reset_expires_at = NULL, updated_at = now()
		WHERE reset_token_hash = $1 AND reset_expires_at <= $2
	`
	_, err := q.db.Exec(ctx, query, tokenHash, now)
	return err
}
