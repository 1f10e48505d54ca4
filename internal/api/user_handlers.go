package api

import (
	"net/http"

	_ "docuvault/internal/models"
)

// @Summary      Get current user info
// @Description  Returns the account behind the bearer token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  ProblemDetail "Unauthorized"
// @Router       /auth/me [get]
func (s *Server) GetCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	RespondJSON(w, http.StatusOK, user)
}
