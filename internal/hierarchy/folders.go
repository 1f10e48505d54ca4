package hierarchy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"docuvault/internal/database"
	"docuvault/internal/domain"
	"docuvault/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const maxNameLength = 255

var noSlash = validation.NewStringRuleWithError(
	func(s string) bool { return !strings.ContainsAny(s, `/\`) },
	validation.NewError("validation_name_slash", "must not contain slashes"),
)

func validateName(field, name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.Length(1, maxNameLength),
		noSlash,
	)
	if err != nil {
		return domain.Invalid(field + ": " + err.Error())
	}
	return nil
}

type CreateFolderInput struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

func (s *Service) CreateFolder(ctx context.Context, ownerID uuid.UUID, in CreateFolderInput) (*models.Folder, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateName("name", in.Name); err != nil {
		return nil, err
	}
	if in.ParentID != nil && *in.ParentID == "" {
		in.ParentID = nil
	}

	a, err := s.arena(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	depth := 1
	if in.ParentID != nil {
		parent, err := s.ownedFolder(ctx, ownerID, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.IsDeleted {
			return nil, domain.Invalid("parent folder is in the trash")
		}
		depth = a.Depth(parent.ID) + 1
	}
	if depth > s.maxDepth {
		return nil, domain.Invalid(fmt.Sprintf("folder nesting is limited to %d levels", s.maxDepth))
	}

	id, err := s.generateUniqueID(ctx, s.store.FolderExists)
	if err != nil {
		return nil, err
	}

	folder, err := s.store.CreateFolder(ctx, database.CreateFolderParams{
		ID:       id,
		OwnerID:  ownerID,
		ParentID: in.ParentID,
		Name:     in.Name,
	})
	if err != nil {
		return nil, err
	}

	folder.Path = folder.Name
	if in.ParentID != nil {
		folder.Path = a.Path(*in.ParentID) + "/" + folder.Name
	}
	return folder, nil
}

// ListFolders returns the owner's folders that are not in the trash.
func (s *Service) ListFolders(ctx context.Context, ownerID uuid.UUID) ([]models.Folder, error) {
	folders, err := s.store.ListFolders(ctx, ownerID, false)
	if err != nil {
		return nil, err
	}
	a, err := s.arena(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return withPaths(a, folders), nil
}

// GetFolder returns the folder whether or not it is in the trash.
func (s *Service) GetFolder(ctx context.Context, ownerID uuid.UUID, id string) (*models.Folder, error) {
	folder, err := s.ownedFolder(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	a, err := s.arena(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	folder.Path = a.Path(folder.ID)
	return folder, nil
}

// GetFolderContents returns the folder with its direct, non-deleted
// subfolders and files.
func (s *Service) GetFolderContents(ctx context.Context, ownerID uuid.UUID, id string) (*models.FolderContents, error) {
	folder, err := s.GetFolder(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	subfolders, err := s.store.ListChildFolders(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	for i := range subfolders {
		subfolders[i].Path = folder.Path + "/" + subfolders[i].Name
	}

	files, err := s.store.ListFilesInFolder(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	return &models.FolderContents{
		Folder:   folder,
		Contents: models.Children{Subfolders: subfolders, Files: files},
	}, nil
}

var folderUpdatable = map[string]bool{"name": true}

// UpdateFolder applies a partial update. Only the name may change; a request
// naming any other field is rejected as a whole.
func (s *Service) UpdateFolder(ctx context.Context, ownerID uuid.UUID, id string, fields map[string]json.RawMessage) (*models.Folder, error) {
	if err := checkAllowed(fields, folderUpdatable); err != nil {
		return nil, err
	}
	if _, err := s.ownedFolder(ctx, ownerID, id); err != nil {
		return nil, err
	}

	raw, ok := fields["name"]
	if !ok {
		return s.GetFolder(ctx, ownerID, id)
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return nil, domain.Invalid("name: must be a string")
	}
	name = strings.TrimSpace(name)
	if err := validateName("name", name); err != nil {
		return nil, err
	}

	if _, err := s.store.RenameFolder(ctx, id, ownerID, name); err != nil {
		return nil, err
	}
	return s.GetFolder(ctx, ownerID, id)
}

// TrashFolder soft-deletes the folder and its whole subtree.
func (s *Service) TrashFolder(ctx context.Context, ownerID uuid.UUID, id string) (*models.Folder, error) {
	res, err := s.cascade.SoftDelete(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("folder moved to trash", "folder_id", id, "folders", len(res.FolderIDs), "files", res.Files)
	return s.GetFolder(ctx, ownerID, id)
}

// RestoreFolder brings a trashed folder and its whole subtree back.
func (s *Service) RestoreFolder(ctx context.Context, ownerID uuid.UUID, id string) (*models.Folder, error) {
	res, err := s.cascade.Restore(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("folder restored", "folder_id", id, "folders", len(res.FolderIDs), "files", res.Files)
	return s.GetFolder(ctx, ownerID, id)
}

func checkAllowed(fields map[string]json.RawMessage, allowed map[string]bool) error {
	if len(fields) == 0 {
		return domain.Invalid("invalid updates: no fields given")
	}
	for key := range fields {
		if !allowed[key] {
			return domain.Invalid("invalid updates: field " + key + " cannot be changed")
		}
	}
	return nil
}
