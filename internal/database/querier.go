package database

import (
	"context"
	"errors"
	"time"

	"docuvault/internal/models"
	"docuvault/internal/tree"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailTaken      = errors.New("email is already registered")
	ErrShareTokenTaken = errors.New("share token is already in use")
)

// Querier is the full set of persistence operations. Lookups scoped by an
// owner return (nil, nil) when the row is missing or owned by someone else.
type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (bool, error)
	ClearExpiredResetToken(ctx context.Context, tokenHash string, now time.Time) error

	FolderExists(ctx context.Context, id string) (bool, error)
	CreateFolder(ctx context.Context, arg CreateFolderParams) (*models.Folder, error)
	GetFolderByID(ctx context.Context, id string, ownerID uuid.UUID) (*models.Folder, error)
	ListFolders(ctx context.Context, ownerID uuid.UUID, deleted bool) ([]models.Folder, error)
	ListChildFolders(ctx context.Context, ownerID uuid.UUID, parentID string) ([]models.Folder, error)
	ListFolderLinks(ctx context.Context, ownerID uuid.UUID) ([]tree.Link, error)
	RenameFolder(ctx context.Context, id string, ownerID uuid.UUID, name string) (*models.Folder, error)
	SetFolderTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) error

	FileExists(ctx context.Context, id string) (bool, error)
	CreateFile(ctx context.Context, arg CreateFileParams) (*models.File, error)
	GetFileByID(ctx context.Context, id string, ownerID uuid.UUID) (*models.File, error)
	GetFileByShareToken(ctx context.Context, token string) (*models.File, error)
	ListFiles(ctx context.Context, ownerID uuid.UUID, deleted bool) ([]models.File, error)
	ListFilesInFolder(ctx context.Context, ownerID uuid.UUID, folderID string) ([]models.File, error)
	UpdateFile(ctx context.Context, id string, ownerID uuid.UUID, arg UpdateFileParams) (*models.File, error)
	SetFileTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) (*models.File, error)
	SetFolderFilesTrashed(ctx context.Context, folderID string, ownerID uuid.UUID, deletedAt *time.Time) (int64, error)
	SetShareToken(ctx context.Context, id string, ownerID uuid.UUID, token *string, expiresAt *time.Time) (*models.File, error)
}

// Store is a Querier that can also run a group of operations atomically.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
	Ping(ctx context.Context) error
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
}

type CreateFolderParams struct {
	ID       string
	OwnerID  uuid.UUID
	ParentID *string
	Name     string
}

type CreateFileParams struct {
	ID           string
	OwnerID      uuid.UUID
	FolderID     *string
	Name         string
	OriginalName string
	StorageKey   string
	SizeBytes    int64
	MimeType     string
}

// UpdateFileParams carries only the fields being changed. SetFolder
// distinguishes "move to FolderID (possibly nil)" from "leave alone".
type UpdateFileParams struct {
	Name       *string
	SetFolder  bool
	FolderID   *string
	IsFavorite *bool
}

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return false
}
