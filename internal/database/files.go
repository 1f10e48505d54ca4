package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docuvault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const fileColumns = `id, owner_id, folder_id, name, original_name, storage_key, size_bytes, mime_type,
	is_favorite, is_deleted, deleted_at, share_token, share_expires_at, created_at, updated_at`

func scanFile(row scanner) (*models.File, error) {
	var file models.File
	err := row.Scan(
		&file.ID,
		&file.OwnerID,
		&file.FolderID,
		&file.Name,
		&file.OriginalName,
		&file.StorageKey,
		&file.SizeBytes,
		&file.MimeType,
		&file.IsFavorite,
		&file.IsDeleted,
		&file.DeletedAt,
		&file.ShareToken,
		&file.ShareExpiresAt,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func collectFiles(rows pgx.Rows) ([]models.File, error) {
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

func (q *Queries) FileExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM files WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (q *Queries) CreateFile(ctx context.Context, arg CreateFileParams) (*models.File, error) {
	query := `
		INSERT INTO files (id, owner_id, folder_id, name, original_name, storage_key, size_bytes, mime_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + fileColumns
	return scanFile(q.db.QueryRow(ctx, query,
		arg.ID, arg.OwnerID, arg.FolderID, arg.Name, arg.OriginalName, arg.StorageKey, arg.SizeBytes, arg.MimeType,
	))
}

func (q *Queries) GetFileByID(ctx context.Context, id string, ownerID uuid.UUID) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND owner_id = $2`
	return scanFile(q.db.QueryRow(ctx, query, id, ownerID))
}

func (q *Queries) GetFileByShareToken(ctx context.Context, token string) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE share_token = $1`
	return scanFile(q.db.QueryRow(ctx, query, token))
}

func (q *Queries) ListFiles(ctx context.Context, ownerID uuid.UUID, deleted bool) ([]models.File, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE owner_id = $1 AND is_deleted = $2
		ORDER BY created_at DESC, id
	`
	rows, err := q.db.Query(ctx, query, ownerID, deleted)
	if err != nil {
		return nil, err
	}
	return collectFiles(rows)
}

func (q *Queries) ListFilesInFolder(ctx context.Context, ownerID uuid.UUID, folderID string) ([]models.File, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE owner_id = $1 AND folder_id = $2 AND is_deleted = FALSE
		ORDER BY name, id
	`
	rows, err := q.db.Query(ctx, query, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	return collectFiles(rows)
}

func (q *Queries) UpdateFile(ctx context.Context, id string, ownerID uuid.UUID, arg UpdateFileParams) (*models.File, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id, ownerID}

	if arg.Name != nil {
		args = append(args, *arg.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if arg.SetFolder {
		args = append(args, arg.FolderID)
		sets = append(sets, fmt.Sprintf("folder_id = $%d", len(args)))
	}
	if arg.IsFavorite != nil {
		args = append(args, *arg.IsFavorite)
		sets = append(sets, fmt.Sprintf("is_favorite = $%d", len(args)))
	}

	query := `UPDATE files SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + fileColumns
	return scanFile(q.db.QueryRow(ctx, query, args...))
}

func (q *Queries) SetFileTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) (*models.File, error) {
	query := `
		UPDATE files SET is_deleted = $3, deleted_at = $4, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + fileColumns
	return scanFile(q.db.QueryRow(ctx, query, id, ownerID, deletedAt != nil, deletedAt))
}

// SetFolderFilesTrashed flips every file directly inside folderID, whatever
// state each file was in before.
func (q *Queries) SetFolderFilesTrashed(ctx context.Context, folderID string, ownerID uuid.UUID, deletedAt *time.Time) (int64, error) {
	query := `
		UPDATE files SET is_deleted = $3, deleted_at = $4, updated_at = now()
		WHERE folder_id = $1 AND owner_id = $2
	`
	res, err := q.db.Exec(ctx, query, folderID, ownerID, deletedAt != nil, deletedAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

// SetShareToken replaces the file's share token; a nil token revokes it.
func (q *Queries) SetShareToken(ctx context.Context, id string, ownerID uuid.UUID, token *string, expiresAt *time.Time) (*models.File, error) {
	query := `
		UPDATE files SET share_token = $3, share_expires_at = $4, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + fileColumns
	file, err := scanFile(q.db.QueryRow(ctx, query, id, ownerID, token, expiresAt))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, ErrShareTokenTaken
		}
		return nil, err
	}
	return file, nil
}
