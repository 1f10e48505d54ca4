package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"docuvault/internal/domain"
	_ "docuvault/internal/models"
	_ "docuvault/internal/sharing"

	"github.com/go-chi/chi/v5"
)

type CreateShareRequest struct {
	ExpiresAt *time.Time `json:"expires_at" example:"2030-01-01T00:00:00Z"`
}

// @Summary      Create a share link
// @Description  Mints a new unguessable link for the file, replacing any previous one. The body is optional.
// @Tags         shares
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fileId         path      string              true   "File ID"
// @Param        shareRequest   body      CreateShareRequest  false  "Optional expiry"
// @Success      200            {object}  sharing.Link
// @Failure      400            {object}  ProblemDetail "Invalid expiry"
// @Failure      401            {object}  ProblemDetail "Unauthorized"
// @Failure      404            {object}  ProblemDetail "File not found"
// @Router       /files/{fileId}/share [post]
func (s *Server) CreateShareLinkHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req CreateShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondErr(w, r, domain.Invalid("invalid request body"))
		return
	}

	link, err := s.sharing.CreateShareLink(r.Context(), user.ID, chi.URLParam(r, "fileId"), req.ExpiresAt)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, link)
}

// @Summary      Revoke a share link
// @Tags         shares
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      204     {null}    nil "No Content"
// @Failure      401     {object}  ProblemDetail "Unauthorized"
// @Failure      404     {object}  ProblemDetail "File not found"
// @Router       /files/{fileId}/share [delete]
func (s *Server) RevokeShareLinkHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := s.sharing.Revoke(r.Context(), user.ID, chi.URLParam(r, "fileId")); err != nil {
		s.respondErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Get a shared file
// @Description  Public metadata for a file behind a share link. No bearer token is needed.
// @Tags         shares
// @Produce      json
// @Param        token  path      string  true  "Share token"
// @Success      200    {object}  models.SharedFile
// @Failure      404    {object}  ProblemDetail "Shared file not found or link has expired"
// @Router       /shared/{token} [get]
func (s *Server) GetSharedFileHandler(w http.ResponseWriter, r *http.Request) {
	file, err := s.sharing.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, file.Shared())
}

// @Summary      Download a shared file
// @Description  Streams the file behind a share link. No bearer token is needed.
// @Tags         shares
// @Produce      application/octet-stream
// @Param        token  path      string  true  "Share token"
// @Success      200    {file}    file
// @Failure      404    {object}  ProblemDetail "Shared file not found or link has expired"
// @Router       /shared/{token}/download [get]
func (s *Server) DownloadSharedFileHandler(w http.ResponseWriter, r *http.Request) {
	file, err := s.sharing.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	content, err := s.hierarchy.OpenContent(r.Context(), file)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	defer content.Close()

	s.streamFile(w, r, file, content)
}
