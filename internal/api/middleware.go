package api

import (
	"context"
	"net/http"
	"strings"

	"docuvault/internal/models"
)

type contextKey string

const userContextKey = contextKey("user")

// AuthMiddleware resolves the bearer token to a live user and attaches it to
// the request context. Any failure ends the request with 401.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			RespondError(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
			RespondError(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		user, err := s.identity.Authenticate(r.Context(), headerParts[1])
		if err != nil {
			s.respondErr(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}
