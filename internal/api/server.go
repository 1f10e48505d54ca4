package api

import (
	"log/slog"

	"docuvault/internal/config"
	"docuvault/internal/database"
	"docuvault/internal/hierarchy"
	"docuvault/internal/identity"
	"docuvault/internal/sharing"
	"docuvault/internal/websocket"
)

type Server struct {
	config    *config.Config
	store     database.Store
	identity  *identity.Service
	hierarchy *hierarchy.Service
	sharing   *sharing.Issuer
	wsHub     *websocket.Hub
	logger    *slog.Logger
}

type Services struct {
	Identity  *identity.Service
	Hierarchy *hierarchy.Service
	Sharing   *sharing.Issuer
}

func NewServer(cfg *config.Config, store database.Store, svc Services, wsHub *websocket.Hub, logger *slog.Logger) *Server {
	return &Server{
		config:    cfg,
		store:     store,
		identity:  svc.Identity,
		hierarchy: svc.Hierarchy,
		sharing:   svc.Sharing,
		wsHub:     wsHub,
		logger:    logger,
	}
}
