package api

import (
	"net/http"

	_ "docuvault/internal/models"
)

// @Summary      List trash contents
// @Description  Retrieves all folders and files currently in the caller's trash.
// @Tags         trash
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Trash
// @Failure      401  {object}  ProblemDetail "Unauthorized"
// @Failure      500  {object}  ProblemDetail
// @Router       /trash [get]
func (s *Server) ListTrashHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	trash, err := s.hierarchy.ListTrash(r.Context(), user.ID)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, trash)
}
