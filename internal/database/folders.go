package database

import (
	"context"
	"errors"
	"time"

	"docuvault/internal/models"
	"docuvault/internal/tree"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const folderColumns = `id, owner_id, parent_id, name, is_deleted, deleted_at, created_at, updated_at`

func scanFolder(row scanner) (*models.Folder, error) {
	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.ParentID,
		&folder.Name,
		&folder.IsDeleted,
		&folder.DeletedAt,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func collectFolders(rows pgx.Rows) ([]models.Folder, error) {
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, *folder)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return folders, nil
}

func (q *Queries) FolderExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (q *Queries) CreateFolder(ctx context.Context, arg CreateFolderParams) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, owner_id, parent_id, name)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + folderColumns
	return scanFolder(q.db.QueryRow(ctx, query, arg.ID, arg.OwnerID, arg.ParentID, arg.Name))
}

func (q *Queries) GetFolderByID(ctx context.Context, id string, ownerID uuid.UUID) (*models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders WHERE id = $1 AND owner_id = $2`
	return scanFolder(q.db.QueryRow(ctx, query, id, ownerID))
}

func (q *Queries) ListFolders(ctx context.Context, ownerID uuid.UUID, deleted bool) ([]models.Folder, error) {
	query := `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE owner_id = $1 AND is_deleted = $2
		ORDER BY name, id
	`
	rows, err := q.db.Query(ctx, query, ownerID, deleted)
	if err != nil {
		return nil, err
	}
	return collectFolders(rows)
}

func (q *Queries) ListChildFolders(ctx context.Context, ownerID uuid.UUID, parentID string) ([]models.Folder, error) {
	query := `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE owner_id = $1 AND parent_id = $2 AND is_deleted = FALSE
		ORDER BY name, id
	`
	rows, err := q.db.Query(ctx, query, ownerID, parentID)
	if err != nil {
		return nil, err
	}
	return collectFolders(rows)
}

// ListFolderLinks returns every folder of the owner, trashed or not, reduced
// to what is needed to rebuild the hierarchy.
func (q *Queries) ListFolderLinks(ctx context.Context, ownerID uuid.UUID) ([]tree.Link, error) {
	query := `SELECT id, parent_id, name FROM folders WHERE owner_id = $1 ORDER BY created_at, id`
	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []tree.Link{}
	for rows.Next() {
		var l tree.Link
		if err := rows.Scan(&l.ID, &l.ParentID, &l.Name); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (q *Queries) RenameFolder(ctx context.Context, id string, ownerID uuid.UUID, name string) (*models.Folder, error) {
	query := `
		UPDATE folders SET name = $3, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + folderColumns
	return scanFolder(q.db.QueryRow(ctx, query, id, ownerID, name))
}

// SetFolderTrashed moves the folder into the trash when deletedAt is set and
// out of it when deletedAt is nil.
func (q *Queries) SetFolderTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) error {
	query := `
		UPDATE folders SET is_deleted = $3, deleted_at = $4, updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`
	_, err := q.db.Exec(ctx, query, id, ownerID, deletedAt != nil, deletedAt)
	return err
}
