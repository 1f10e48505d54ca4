// Package sharing mints and resolves public share links for files.
package sharing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docuvault/internal/auth"
	"docuvault/internal/database"
	"docuvault/internal/domain"
	"docuvault/internal/models"

	"github.com/google/uuid"
)

// TokenLength gives 240 bits of entropy with the nanoid alphabet.
const TokenLength = 40

const maxMintAttempts = 3

type Link struct {
	ShareLink string     `json:"share_link" example:"http://localhost:3000/shared/pQm2..."`
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type Issuer struct {
	store   database.Store
	baseURL string
	now     func() time.Time
}

// NewIssuer builds links of the form <baseURL>/shared/<token>.
func NewIssuer(store database.Store, baseURL string) *Issuer {
	return &Issuer{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (i *Issuer) linkFor(token string) string {
	return i.baseURL + "/shared/" + token
}

// CreateShareLink replaces any existing link on the file with a fresh token.
func (i *Issuer) CreateShareLink(ctx context.Context, ownerID uuid.UUID, fileID string, expiresAt *time.Time) (*Link, error) {
	if expiresAt != nil && !expiresAt.After(i.now()) {
		return nil, domain.Invalid("expires_at must be in the future")
	}

	file, err := i.store.GetFileByID(ctx, fileID, ownerID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.NotFound("file not found")
	}

	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		token, err := auth.GenerateToken(TokenLength)
		if err != nil {
			return nil, err
		}

		updated, err := i.store.SetShareToken(ctx, fileID, ownerID, &token, expiresAt)
		if errors.Is(err, database.ErrShareTokenTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, domain.NotFound("file not found")
		}
		return &Link{ShareLink: i.linkFor(token), Token: token, ExpiresAt: expiresAt}, nil
	}
	return nil, fmt.Errorf("failed to mint a unique share token after %d attempts", maxMintAttempts)
}

func (i *Issuer) Revoke(ctx context.Context, ownerID uuid.UUID, fileID string) error {
	updated, err := i.store.SetShareToken(ctx, fileID, ownerID, nil, nil)
	if err != nil {
		return err
	}
	if updated == nil {
		return domain.NotFound("file not found")
	}
	return nil
}

// Resolve returns the file behind a share token. Unknown, expired and
// trashed all look the same to the caller.
func (i *Issuer) Resolve(ctx context.Context, token string) (*models.File, error) {
	notFound := domain.NotFound("shared file not found or link has expired")
	if token == "" {
		return nil, notFound
	}

	file, err := i.store.GetFileByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if file == nil || file.IsDeleted {
		return nil, notFound
	}
	if file.ShareExpiresAt != nil && !file.ShareExpiresAt.After(i.now()) {
		return nil, notFound
	}
	return file, nil
}
