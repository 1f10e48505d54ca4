// Package hierarchy manages an owner's folders and files: creation, listing,
// renames and moves, and the trash. Every lookup is scoped to the owner and
// answers "not found" for anything that belongs to someone else.
package hierarchy

import (
	"context"
	"fmt"
	"log/slog"

	"docuvault/internal/cascade"
	"docuvault/internal/database"
	"docuvault/internal/domain"
	"docuvault/internal/models"
	"docuvault/internal/storage"
	"docuvault/internal/tree"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const (
	idLength      = 21
	maxIDAttempts = 10
)

type Service struct {
	store    database.Store
	content  storage.ContentStore
	cascade  *cascade.Engine
	maxDepth int
	logger   *slog.Logger
}

type Options struct {
	MaxDepth    int
	CascadeInTx bool
}

func NewService(store database.Store, content storage.ContentStore, opts Options, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		content:  content,
		cascade:  cascade.NewEngine(store, cascade.Options{InTx: opts.CascadeInTx}, logger),
		maxDepth: opts.MaxDepth,
		logger:   logger,
	}
}

func (s *Service) generateUniqueID(ctx context.Context, exists func(context.Context, string) (bool, error)) (string, error) {
	generateID, err := nanoid.Standard(idLength)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	for i := 0; i < maxIDAttempts; i++ {
		id := generateID()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for id existence: %w", err)
		}
		if !taken {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxIDAttempts)
}

// arena loads the owner's whole folder hierarchy, trashed folders included,
// so paths and depths can be derived.
func (s *Service) arena(ctx context.Context, ownerID uuid.UUID) (*tree.Arena, error) {
	links, err := s.store.ListFolderLinks(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return tree.NewArena(links), nil
}

func withPaths(a *tree.Arena, folders []models.Folder) []models.Folder {
	for i := range folders {
		folders[i].Path = a.Path(folders[i].ID)
	}
	return folders
}

// ownedFolder returns the folder if ownerID owns it, or a NotFoundError.
func (s *Service) ownedFolder(ctx context.Context, ownerID uuid.UUID, id string) (*models.Folder, error) {
	folder, err := s.store.GetFolderByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, domain.NotFound("folder not found")
	}
	return folder, nil
}

func (s *Service) ownedFile(ctx context.Context, ownerID uuid.UUID, id string) (*models.File, error) {
	file, err := s.store.GetFileByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.NotFound("file not found")
	}
	return file, nil
}

// ListTrash returns everything of the owner's that is currently deleted.
func (s *Service) ListTrash(ctx context.Context, ownerID uuid.UUID) (*models.Trash, error) {
	folders, err := s.store.ListFolders(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}
	files, err := s.store.ListFiles(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}
	a, err := s.arena(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &models.Trash{Folders: withPaths(a, folders), Files: files}, nil
}
