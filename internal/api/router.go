package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	productionCSP  = "default-src 'none'; frame-ancestors 'none'"
	developmentCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"
)

// Routes wires the full HTTP surface.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	csp := developmentCSP
	if s.config.Environment == "production" {
		csp = productionCSP
	}
	r.Use(middleware.SetHeader("Content-Security-Policy", csp))
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	r.Use(middleware.SetHeader("X-Frame-Options", "DENY"))
	r.Use(middleware.SetHeader("X-XSS-Protection", "1; mode=block"))

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&requestLogFormatter{logger: s.logger}))
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", s.HealthCheckHandler)
	r.Get("/ready", s.ReadinessHandler)
	r.Get("/ws", s.ServeWsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.HealthCheckHandler)
		r.Get("/ready", s.ReadinessHandler)

		r.Post("/auth/register", s.RegisterHandler)
		r.Post("/auth/login", s.LoginHandler)
		r.Post("/auth/forgot-password", s.ForgotPasswordHandler)
		r.Post("/auth/reset-password/{token}", s.ResetPasswordHandler)

		r.Get("/shared/{token}", s.GetSharedFileHandler)
		r.Get("/shared/{token}/download", s.DownloadSharedFileHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)

			r.Get("/auth/me", s.GetCurrentUserHandler)

			r.Post("/files/upload", s.UploadFileHandler)
			r.Get("/files", s.ListFilesHandler)
			r.Get("/files/{fileId}", s.GetFileHandler)
			r.Patch("/files/{fileId}", s.UpdateFileHandler)
			r.Delete("/files/{fileId}", s.TrashFileHandler)
			r.Post("/files/{fileId}/restore", s.RestoreFileHandler)
			r.Get("/files/{fileId}/download", s.DownloadFileHandler)
			r.Post("/files/{fileId}/share", s.CreateShareLinkHandler)
			r.Delete("/files/{fileId}/share", s.RevokeShareLinkHandler)

			r.Post("/folders", s.CreateFolderHandler)
			r.Get("/folders", s.ListFoldersHandler)
			r.Get("/folders/{folderId}", s.GetFolderHandler)
			r.Patch("/folders/{folderId}", s.UpdateFolderHandler)
			r.Delete("/folders/{folderId}", s.TrashFolderHandler)
			r.Post("/folders/{folderId}/restore", s.RestoreFolderHandler)

			r.Get("/trash", s.ListTrashHandler)
		})
	})

	return r
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ReadinessResponse struct {
	Status   string `json:"status" example:"ready"`
	Database string `json:"database" example:"ok"`
}

// @Summary      Health check
// @Description  Liveness probe. Answers as long as the process serves HTTP.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// @Summary      Readiness check
// @Description  Reports whether the database answers.
// @Tags         health
// @Produce      json
// @Success      200  {object}  ReadinessResponse
// @Failure      503  {object}  ReadinessResponse
// @Router       /ready [get]
func (s *Server) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("readiness check: database ping failed", "error", err)
		RespondJSON(w, http.StatusServiceUnavailable, ReadinessResponse{Status: "unavailable", Database: "unreachable"})
		return
	}
	RespondJSON(w, http.StatusOK, ReadinessResponse{Status: "ready", Database: "ok"})
}
