package memstore

import (
	"context"
	"sort"
	"time"

	"docuvault/internal/database"
	"docuvault/internal/models"
	"docuvault/internal/tree"

	"github.com/google/uuid"
)

// queries runs against a state without locking; Store and ExecTx own the lock.
type queries struct {
	st *state
}

func (q *queries) touch(id string) {
	q.st.clock++
	q.st.seq[id] = q.st.clock
}

func now() time.Time { return time.Now().UTC() }

func (q *queries) CreateUser(ctx context.Context, arg database.CreateUserParams) (*models.User, error) {
	for _, u := range q.st.users {
		if u.Email == arg.Email {
			return nil, database.ErrEmailTaken
		}
	}
	ts := now()
	u := models.User{
		ID:           arg.ID,
		Email:        arg.Email,
		Name:         arg.Name,
		PasswordHash: arg.PasswordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	q.st.users[u.ID] = u
	return &u, nil
}

func (q *queries) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := q.st.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (q *queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range q.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (q *queries) SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	u, ok := q.st.users[userID]
	if !ok {
		return nil
	}
	u.ResetTokenHash = &tokenHash
	u.ResetExpiresAt = &expiresAt
	u.UpdatedAt = now()
	q.st.users[userID] = u
	return nil
}

func (q *queries) userByResetToken(tokenHash string) (models.User, bool) {
	for _, u := range q.st.users {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash {
			return u, true
		}
	}
	return models.User{}, false
}

func (q *queries) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, at time.Time) (bool, error) {
	u, ok := q.userByResetToken(tokenHash)
	if !ok || u.ResetExpiresAt == nil || !u.ResetExpiresAt.After(at) {
		return false, nil
	}
	u.PasswordHash = passwordHash
	u.ResetTokenHash = nil
	u.ResetExpiresAt = nil
	u.UpdatedAt = now()
	q.st.users[u.ID] = u
	return true, nil
}

func (q *queries) ClearExpiredResetToken(ctx context.Context, tokenHash string, at time.Time) error {
	u, ok := q.userByResetToken(tokenHash)
	if !ok || u.ResetExpiresAt == nil || u.ResetExpiresAt.After(at) {
		return nil
	}
	u.ResetTokenHash = nil
	u.ResetExpiresAt = nil
	u.UpdatedAt = now()
	q.st.users[u.ID] = u
	return nil
}

func (q *queries) FolderExists(ctx context.Context, id string) (bool, error) {
	_, ok := q.st.folders[id]
	return ok, nil
}

func (q *queries) CreateFolder(ctx context.Context, arg database.CreateFolderParams) (*models.Folder, error) {
	ts := now()
	f := models.Folder{
		ID:        arg.ID,
		OwnerID:   arg.OwnerID,
		ParentID:  arg.ParentID,
		Name:      arg.Name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	q.st.folders[f.ID] = f
	q.touch(f.ID)
	return &f, nil
}

func (q *queries) GetFolderByID(ctx context.Context, id string, ownerID uuid.UUID) (*models.Folder, error) {
	f, ok := q.st.folders[id]
	if !ok || f.OwnerID != ownerID {
		return nil, nil
	}
	return &f, nil
}

func (q *queries) ListFolders(ctx context.Context, ownerID uuid.UUID, deleted bool) ([]models.Folder, error) {
	folders := []models.Folder{}
	for _, f := range q.st.folders {
		if f.OwnerID == ownerID && f.IsDeleted == deleted {
			folders = append(folders, f)
		}
	}
	sortFoldersByName(folders)
	return folders, nil
}

func (q *queries) ListChildFolders(ctx context.Context, ownerID uuid.UUID, parentID string) ([]models.Folder, error) {
	folders := []models.Folder{}
	for _, f := range q.st.folders {
		if f.OwnerID == ownerID && !f.IsDeleted && f.ParentID != nil && *f.ParentID == parentID {
			folders = append(folders, f)
		}
	}
	sortFoldersByName(folders)
	return folders, nil
}

func (q *queries) ListFolderLinks(ctx context.Context, ownerID uuid.UUID) ([]tree.Link, error) {
	links := []tree.Link{}
	for _, f := range q.st.folders {
		if f.OwnerID == ownerID {
			links = append(links, tree.Link{ID: f.ID, ParentID: f.ParentID, Name: f.Name})
		}
	}
	sort.Slice(links, func(i, j int) bool {
		return q.st.seq[links[i].ID] < q.st.seq[links[j].ID]
	})
	return links, nil
}

func (q *queries) RenameFolder(ctx context.Context, id string, ownerID uuid.UUID, name string) (*models.Folder, error) {
	f, ok := q.st.folders[id]
	if !ok || f.OwnerID != ownerID {
		return nil, nil
	}
	f.Name = name
	f.UpdatedAt = now()
	q.st.folders[id] = f
	return &f, nil
}

func (q *queries) SetFolderTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) error {
	f, ok := q.st.folders[id]
	if !ok || f.OwnerID != ownerID {
		return nil
	}
	f.IsDeleted = deletedAt != nil
	f.DeletedAt = deletedAt
	f.UpdatedAt = now()
	q.st.folders[id] = f
	return nil
}

func (q *queries) FileExists(ctx context.Context, id string) (bool, error) {
	_, ok := q.st.files[id]
	return ok, nil
}

func (q *queries) CreateFile(ctx context.Context, arg database.CreateFileParams) (*models.File, error) {
	ts := now()
	f := models.File{
		ID:           arg.ID,
		OwnerID:      arg.OwnerID,
		FolderID:     arg.FolderID,
		Name:         arg.Name,
		OriginalName: arg.OriginalName,
		StorageKey:   arg.StorageKey,
		SizeBytes:    arg.SizeBytes,
		MimeType:     arg.MimeType,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	q.st.files[f.ID] = f
	q.touch(f.ID)
	return &f, nil
}

func (q *queries) GetFileByID(ctx context.Context, id string, ownerID uuid.UUID) (*models.File, error) {
	f, ok := q.st.files[id]
	if !ok || f.OwnerID != ownerID {
		return nil, nil
	}
	return &f, nil
}

func (q *queries) GetFileByShareToken(ctx context.Context, token string) (*models.File, error) {
	for _, f := range q.st.files {
		if f.ShareToken != nil && *f.ShareToken == token {
			return &f, nil
		}
	}
	return nil, nil
}

func (q *queries) ListFiles(ctx context.Context, ownerID uuid.UUID, deleted bool) ([]models.File, error) {
	files := []models.File{}
	for _, f := range q.st.files {
		if f.OwnerID == ownerID && f.IsDeleted == deleted {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool {
		return q.st.seq[files[i].ID] > q.st.seq[files[j].ID]
	})
	return files, nil
}

func (q *queries) ListFilesInFolder(ctx context.Context, ownerID uuid.UUID, folderID string) ([]models.File, error) {
	files := []models.File{}
	for _, f := range q.st.files {
		if f.OwnerID == ownerID && !f.IsDeleted && f.FolderID != nil && *f.FolderID == folderID {
			files = append(files, f)
		}
	}
	sortFilesByName(files)
	return files, nil
}

func (q *queries) UpdateFile(ctx context.Context, id string, ownerID uuid.UUID, arg database.UpdateFileParams) (*models.File, error) {
	f, ok := q.st.files[id]
	if !ok || f.OwnerID != ownerID {
		return nil, nil
	}
	if arg.Name != nil {
		f.Name = *arg.Name
	}
	if arg.SetFolder {
		f.FolderID = arg.FolderID
	}
	if arg.IsFavorite != nil {
		f.IsFavorite = *arg.IsFavorite
	}
	f.UpdatedAt = now()
	q.st.files[id] = f
	return &f, nil
}

func (q *queries) SetFileTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) (*models.File, error) {
	f, ok := q.st.files[id]
	if !ok || f.OwnerID != ownerID {
		return nil, nil
	}
	f.IsDeleted = deletedAt != nil
	f.DeletedAt = deletedAt
	f.UpdatedAt = now()
	q.st.files[id] = f
	return &f, nil
}

func (q *queries) SetFolderFilesTrashed(ctx context.Context, folderID string, ownerID uuid.UUID, deletedAt *time.Time) (int64, error) {
	var n int64
	ts := now()
	for id, f := range q.st.files {
		if f.OwnerID != ownerID || f.FolderID == nil || *f.FolderID != folderID {
			continue
		}
		f.IsDeleted = deletedAt != nil
		f.DeletedAt = deletedAt
		f.UpdatedAt = ts
		q.st.files[id] = f
		n++
	}
	return n, nil
}

func (q *queries) SetShareToken(ctx context.Context, id string, ownerID uuid.UUID, token *string, expiresAt *time.Time) (*models.File, error) {
	f, ok := q.st.files[id]
	if !ok || f.OwnerID != ownerID {
		return nil, nil
	}
	if token != nil {
		for otherID, other := range q.st.files {
			if otherID != id && other.ShareToken != nil && *other.ShareToken == *token {
				return nil, database.ErrShareTokenTaken
			}
		}
	}
	f.ShareToken = token
	f.ShareExpiresAt = expiresAt
	f.UpdatedAt = now()
	q.st.files[id] = f
	return &f, nil
}
