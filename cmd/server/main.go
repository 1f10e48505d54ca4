// @title           DocuVault API
// @version         1.0
// @description     File and folder storage with trash, restore and share links.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"docuvault/internal/api"
	"docuvault/internal/config"
	"docuvault/internal/database"
	"docuvault/internal/database/memstore"
	"docuvault/internal/hierarchy"
	"docuvault/internal/identity"
	"docuvault/internal/mail"
	"docuvault/internal/sharing"
	"docuvault/internal/storage"
	"docuvault/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"

	_ "docuvault/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Environment == "dev" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (database.Store, func(), error) {
	if cfg.DB.Driver == "memory" {
		logger.Warn("using the in-memory store, data is lost on restart")
		return memstore.New(), func() {}, nil
	}

	dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		return nil, nil, err
	}
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, nil, err
	}
	logger.Info("connected to database")

	store := database.NewStore(dbpool)
	if cfg.DB.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			dbpool.Close()
			return nil, nil, err
		}
		logger.Info("database schema is up to date")
	}
	return store, dbpool.Close, nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	contentStore, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	if closer, ok := contentStore.(io.Closer); ok {
		defer closer.Close()
	}
	logger.Info("content storage ready", "backend", contentStore.Name())

	mailer := mail.New(mail.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, logger)

	wsHub := websocket.NewHub(logger)
	go wsHub.Run(ctx)

	server := api.NewServer(cfg, store, api.Services{
		Identity: identity.NewService(store, mailer, identity.Config{
			JWTSecret:   cfg.JWT.Secret,
			TokenTTL:    cfg.JWT.Expiry,
			FrontendURL: cfg.App.FrontendURL,
		}, logger),
		Hierarchy: hierarchy.NewService(store, contentStore, hierarchy.Options{
			MaxDepth:    cfg.Hierarchy.MaxDepth,
			CascadeInTx: cfg.Hierarchy.CascadeInTx,
		}, logger),
		Sharing: sharing.NewIssuer(store, cfg.App.FrontendURL),
	}, wsHub, logger)

	httpServer := &http.Server{
		Addr:     cfg.Server.Addr,
		Handler:  server.Routes(),
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
