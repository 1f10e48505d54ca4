// Package memstore keeps users, folders and files in process memory. It
// satisfies database.Store and backs local development (db.driver=memory)
// and the service tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"docuvault/internal/database"
	"docuvault/internal/models"
	"docuvault/internal/tree"

	"github.com/google/uuid"
)

type state struct {
	users   map[uuid.UUID]models.User
	folders map[string]models.Folder
	files   map[string]models.File
	// seq orders rows by insertion, standing in for created_at ties.
	seq   map[string]int64
	clock int64
}

func newState() *state {
	return &state{
		users:   make(map[uuid.UUID]models.User),
		folders: make(map[string]models.Folder),
		files:   make(map[string]models.File),
		seq:     make(map[string]int64),
	}
}

func (st *state) clone() *state {
	c := newState()
	for k, v := range st.users {
		c.users[k] = v
	}
	for k, v := range st.folders {
		c.folders[k] = v
	}
	for k, v := range st.files {
		c.files[k] = v
	}
	for k, v := range st.seq {
		c.seq[k] = v
	}
	c.clock = st.clock
	return c
}

// Store serializes every operation behind one mutex. ExecTx works on a copy
// of the data and swaps it in only when fn succeeds.
type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: newState()}
}

var _ database.Store = (*Store)(nil)

func (s *Store) ExecTx(ctx context.Context, fn func(database.Querier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.st.clone()
	if err := fn(&queries{st: draft}); err != nil {
		return err
	}
	s.st = draft
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) do(fn func(q *queries)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&queries{st: s.st})
}

func (s *Store) CreateUser(ctx context.Context, arg database.CreateUserParams) (u *models.User, err error) {
	s.do(func(q *queries) { u, err = q.CreateUser(ctx, arg) })
	return
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (u *models.User, err error) {
	s.do(func(q *queries) { u, err = q.GetUserByID(ctx, id) })
	return
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (u *models.User, err error) {
	s.do(func(q *queries) { u, err = q.GetUserByEmail(ctx, email) })
	return
}

func (s *Store) SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (err error) {
	s.do(func(q *queries) { err = q.SetResetToken(ctx, userID, tokenHash, expiresAt) })
	return
}

func (s *Store) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (ok bool, err error) {
	s.do(func(q *queries) { ok, err = q.ConsumeResetToken(ctx, tokenHash, passwordHash, now) })
	return
}

func (s *Store) ClearExpiredResetToken(ctx context.Context, tokenHash string, now time.Time) (err error) {
	s.do(func(q *queries) { err = q.ClearExpiredResetToken(ctx, tokenHash, now) })
	return
}

func (s *Store) FolderExists(ctx context.Context, id string) (ok bool, err error) {
	s.do(func(q *queries) { ok, err = q.FolderExists(ctx, id) })
	return
}

func (s *Store) CreateFolder(ctx context.Context, arg database.CreateFolderParams) (f *models.Folder, err error) {
	s.do(func(q *queries) { f, err = q.CreateFolder(ctx, arg) })
	return
}

func (s *Store) GetFolderByID(ctx context.Context, id string, ownerID uuid.UUID) (f *models.Folder, err error) {
	s.do(func(q *queries) { f, err = q.GetFolderByID(ctx, id, ownerID) })
	return
}

func (s *Store) ListFolders(ctx context.Context, ownerID uuid.UUID, deleted bool) (fs []models.Folder, err error) {
	s.do(func(q *queries) { fs, err = q.ListFolders(ctx, ownerID, deleted) })
	return
}

func (s *Store) ListChildFolders(ctx context.Context, ownerID uuid.UUID, parentID string) (fs []models.Folder, err error) {
	s.do(func(q *queries) { fs, err = q.ListChildFolders(ctx, ownerID, parentID) })
	return
}

func (s *Store) ListFolderLinks(ctx context.Context, ownerID uuid.UUID) (ls []tree.Link, err error) {
	s.do(func(q *queries) { ls, err = q.ListFolderLinks(ctx, ownerID) })
	return
}

func (s *Store) RenameFolder(ctx context.Context, id string, ownerID uuid.UUID, name string) (f *models.Folder, err error) {
	s.do(func(q *queries) { f, err = q.RenameFolder(ctx, id, ownerID, name) })
	return
}

func (s *Store) SetFolderTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) (err error) {
	s.do(func(q *queries) { err = q.SetFolderTrashed(ctx, id, ownerID, deletedAt) })
	return
}

func (s *Store) FileExists(ctx context.Context, id string) (ok bool, err error) {
	s.do(func(q *queries) { ok, err = q.FileExists(ctx, id) })
	return
}

func (s *Store) CreateFile(ctx context.Context, arg database.CreateFileParams) (f *models.File, err error) {
	s.do(func(q *queries) { f, err = q.CreateFile(ctx, arg) })
	return
}

func (s *Store) GetFileByID(ctx context.Context, id string, ownerID uuid.UUID) (f *models.File, err error) {
	s.do(func(q *queries) { f, err = q.GetFileByID(ctx, id, ownerID) })
	return
}

func (s *Store) GetFileByShareToken(ctx context.Context, token string) (f *models.File, err error) {
	s.do(func(q *queries) { f, err = q.GetFileByShareToken(ctx, token) })
	return
}

func (s *Store) ListFiles(ctx context.Context, ownerID uuid.UUID, deleted bool) (fs []models.File, err error) {
	s.do(func(q *queries) { fs, err = q.ListFiles(ctx, ownerID, deleted) })
	return
}

func (s *Store) ListFilesInFolder(ctx context.Context, ownerID uuid.UUID, folderID string) (fs []models.File, err error) {
	s.do(func(q *queries) { fs, err = q.ListFilesInFolder(ctx, ownerID, folderID) })
	return
}

func (s *Store) UpdateFile(ctx context.Context, id string, ownerID uuid.UUID, arg database.UpdateFileParams) (f *models.File, err error) {
	s.do(func(q *queries) { f, err = q.UpdateFile(ctx, id, ownerID, arg) })
	return
}

func (s *Store) SetFileTrashed(ctx context.Context, id string, ownerID uuid.UUID, deletedAt *time.Time) (f *models.File, err error) {
	s.do(func(q *queries) { f, err = q.SetFileTrashed(ctx, id, ownerID, deletedAt) })
	return
}

func (s *Store) SetFolderFilesTrashed(ctx context.Context, folderID string, ownerID uuid.UUID, deletedAt *time.Time) (n int64, err error) {
	s.do(func(q *queries) { n, err = q.SetFolderFilesTrashed(ctx, folderID, ownerID, deletedAt) })
	return
}

func (s *Store) SetShareToken(ctx context.Context, id string, ownerID uuid.UUID, token *string, expiresAt *time.Time) (f *models.File, err error) {
	s.do(func(q *queries) { f, err = q.SetShareToken(ctx, id, ownerID, token, expiresAt) })
	return
}

func sortFoldersByName(folders []models.Folder) {
	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Name != folders[j].Name {
			return folders[i].Name < folders[j].Name
		}
		return folders[i].ID < folders[j].ID
	})
}

func sortFilesByName(files []models.File) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Name != files[j].Name {
			return files[i].Name < files[j].Name
		}
		return files[i].ID < files[j].ID
	})
}
