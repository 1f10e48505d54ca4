package models

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	ID             string     `json:"id" example:"V1StGXR8_Z5jdHi6B-myT"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	FolderID       *string    `json:"folder_id"`
	Name           string     `json:"name" example:"report.pdf"`
	OriginalName   string     `json:"original_name" example:"report-final.pdf"`
	StorageKey     string     `json:"-"`
	SizeBytes      int64      `json:"size_bytes" example:"48213"`
	MimeType       string     `json:"mime_type" example:"application/pdf"`
	IsFavorite     bool       `json:"is_favorite"`
	IsDeleted      bool       `json:"is_deleted"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
	ShareToken     *string    `json:"share_token,omitempty"`
	ShareExpiresAt *time.Time `json:"share_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SharedFile is what a share link holder gets to see.
type SharedFile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SizeBytes int64     `json:"size_bytes"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *File) Shared() SharedFile {
	return SharedFile{
		ID:        f.ID,
		Name:      f.Name,
		SizeBytes: f.SizeBytes,
		MimeType:  f.MimeType,
		CreatedAt: f.CreatedAt,
	}
}

// Trash lists what an owner currently has in the trash.
type Trash struct {
	Folders []Folder `json:"folders"`
	Files   []File   `json:"files"`
}
