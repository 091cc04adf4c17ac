package handlers

import (
	"go.uber.org/zap"

	"github.com/ParthDhengle/ClipHub/internal/repository"
	"github.com/ParthDhengle/ClipHub/internal/services"
)

// Handler bundles the route handlers. Collections and analytics are plain
// CRUD and talk to their repositories directly; everything else goes through
// the service layer.
type Handler struct {
	auth        *services.AuthService
	users       *services.UserService
	media       *services.MediaService
	collections repository.CollectionRepository
	analytics   repository.AnalyticsRepository
	log         *zap.Logger
}

func NewHandler(
	auth *services.AuthService,
	users *services.UserService,
	media *services.MediaService,
	collections repository.CollectionRepository,
	analytics repository.AnalyticsRepository,
	log *zap.Logger,
) *Handler {
	return &Handler{
		auth:        auth,
		users:       users,
		media:       media,
		collections: collections,
		analytics:   analytics,
		log:         log,
	}
}
