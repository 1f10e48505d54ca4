package hierarchy

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"docuvault/internal/database"
	"docuvault/internal/domain"
	"docuvault/internal/models"
	"docuvault/internal/storage"

	"github.com/google/uuid"
)

type UploadInput struct {
	// Name defaults to the base name of OriginalName.
	Name         string
	OriginalName string
	FolderID     *string
	SizeBytes    int64
	MimeType     string
	Body         io.Reader
}

// checkTargetFolder makes sure a file may be placed in folderID: the folder
// must belong to the owner and must not be in the trash.
func (s *Service) checkTargetFolder(ctx context.Context, ownerID uuid.UUID, folderID *string) error {
	if folderID == nil {
		return nil
	}
	folder, err := s.ownedFolder(ctx, ownerID, *folderID)
	if err != nil {
		return err
	}
	if folder.IsDeleted {
		return domain.Invalid("folder is in the trash")
	}
	return nil
}

// UploadFile stores the content and records its metadata. If the metadata
// cannot be written the stored content is removed again.
func (s *Service) UploadFile(ctx context.Context, ownerID uuid.UUID, in UploadInput) (*models.File, error) {
	in.OriginalName = filepath.Base(strings.TrimSpace(in.OriginalName))
	if in.OriginalName == "." || in.OriginalName == string(filepath.Separator) {
		in.OriginalName = ""
	}
	if in.Name = strings.TrimSpace(in.Name); in.Name == "" {
		in.Name = in.OriginalName
	}
	if err := validateName("name", in.Name); err != nil {
		return nil, err
	}
	if in.FolderID != nil && *in.FolderID == "" {
		in.FolderID = nil
	}
	if err := s.checkTargetFolder(ctx, ownerID, in.FolderID); err != nil {
		return nil, err
	}

	id, err := s.generateUniqueID(ctx, s.store.FileExists)
	if err != nil {
		return nil, err
	}

	if err := s.content.Save(ctx, id, in.Body, in.SizeBytes, in.MimeType); err != nil {
		return nil, err
	}

	file, err := s.store.CreateFile(ctx, database.CreateFileParams{
		ID:           id,
		OwnerID:      ownerID,
		FolderID:     in.FolderID,
		Name:         in.Name,
		OriginalName: in.OriginalName,
		StorageKey:   id,
		SizeBytes:    in.SizeBytes,
		MimeType:     in.MimeType,
	})
	if err != nil {
		if delErr := s.content.Delete(context.WithoutCancel(ctx), id); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload", "storage_key", id, "error", delErr)
		}
		return nil, err
	}

	s.logger.Info("file uploaded", "file_id", file.ID, "size_bytes", file.SizeBytes, "backend", s.content.Name())
	return file, nil
}

// ListFiles returns the owner's files that are not in the trash.
func (s *Service) ListFiles(ctx context.Context, ownerID uuid.UUID) ([]models.File, error) {
	return s.store.ListFiles(ctx, ownerID, false)
}

// GetFile returns the file whether or not it is in the trash.
func (s *Service) GetFile(ctx context.Context, ownerID uuid.UUID, id string) (*models.File, error) {
	return s.ownedFile(ctx, ownerID, id)
}

// OpenFile returns the metadata and a reader over the content. The caller
// closes the reader.
func (s *Service) OpenFile(ctx context.Context, ownerID uuid.UUID, id string) (*models.File, io.ReadCloser, error) {
	file, err := s.ownedFile(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.OpenContent(ctx, file)
	if err != nil {
		return nil, nil, err
	}
	return file, rc, nil
}

// OpenContent reads the stored bytes of an already authorized file.
func (s *Service) OpenContent(ctx context.Context, file *models.File) (io.ReadCloser, error) {
	rc, err := s.content.Get(ctx, file.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			s.logger.Error("file content missing from storage", "file_id", file.ID, "storage_key", file.StorageKey)
			return nil, domain.NotFound("file content not found")
		}
		return nil, err
	}
	return rc, nil
}

var fileUpdatable = map[string]bool{"name": true, "folder_id": true, "is_favorite": true}

// UpdateFile applies a partial update to name, folder_id and is_favorite.
// A request naming any other field is rejected as a whole.
func (s *Service) UpdateFile(ctx context.Context, ownerID uuid.UUID, id string, fields map[string]json.RawMessage) (*models.File, error) {
	if err := checkAllowed(fields, fileUpdatable); err != nil {
		return nil, err
	}
	if _, err := s.ownedFile(ctx, ownerID, id); err != nil {
		return nil, err
	}

	var arg database.UpdateFileParams
	if raw, ok := fields["name"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, domain.Invalid("name: must be a string")
		}
		name = strings.TrimSpace(name)
		if err := validateName("name", name); err != nil {
			return nil, err
		}
		arg.Name = &name
	}
	if raw, ok := fields["folder_id"]; ok {
		var folderID *string
		if err := json.Unmarshal(raw, &folderID); err != nil {
			return nil, domain.Invalid("folder_id: must be a string or null")
		}
		if folderID != nil && *folderID == "" {
			folderID = nil
		}
		if err := s.checkTargetFolder(ctx, ownerID, folderID); err != nil {
			return nil, err
		}
		arg.SetFolder = true
		arg.FolderID = folderID
	}
	if raw, ok := fields["is_favorite"]; ok {
		var fav bool
		if err := json.Unmarshal(raw, &fav); err != nil {
			return nil, domain.Invalid("is_favorite: must be a boolean")
		}
		arg.IsFavorite = &fav
	}

	file, err := s.store.UpdateFile(ctx, id, ownerID, arg)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.NotFound("file not found")
	}
	return file, nil
}

// TrashFile soft-deletes a single file.
func (s *Service) TrashFile(ctx context.Context, ownerID uuid.UUID, id string) (*models.File, error) {
	if _, err := s.ownedFile(ctx, ownerID, id); err != nil {
		return nil, err
	}
	stamp := time.Now().UTC()
	file, err := s.store.SetFileTrashed(ctx, id, ownerID, &stamp)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.NotFound("file not found")
	}
	return file, nil
}

// RestoreFile takes a single file out of the trash.
func (s *Service) RestoreFile(ctx context.Context, ownerID uuid.UUID, id string) (*models.File, error) {
	file, err := s.store.GetFileByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if file == nil || !file.IsDeleted {
		return nil, domain.NotFound("file not found in trash")
	}
	file, err = s.store.SetFileTrashed(ctx, id, ownerID, nil)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.NotFound("file not found in trash")
	}
	return file, nil
}
