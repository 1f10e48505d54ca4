package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `json:"id" db:"id" example:"a1b2c3d4-e5f6-7890-1234-567890abcdef"`
	Email          string     `json:"email" db:"email" example:"ada@example.com"`
	Name           string     `json:"name" db:"name" example:"Ada"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	ResetTokenHash *string    `json:"-" db:"reset_token_hash"`
	ResetExpiresAt *time.Time `json:"-" db:"reset_expires_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
