package models

import (
	"time"

	"github.com/google/uuid"
)

// Folder is a node of an owner's folder tree. Path is derived from the
// parent chain when the folder is read and is never stored.
type Folder struct {
	ID        string     `json:"id" example:"V1StGXR8_Z5jdHi6B-myT"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	ParentID  *string    `json:"parent_id"`
	Name      string     `json:"name" example:"Reports"`
	Path      string     `json:"path" example:"Work/Reports"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FolderContents is a folder together with its direct, non-deleted children.
type FolderContents struct {
	Folder   *Folder  `json:"folder"`
	Contents Children `json:"contents"`
}

type Children struct {
	Subfolders []Folder `json:"subfolders"`
	Files      []File   `json:"files"`
}
