package wire

import (
	"glamhaven/internal/adaptor"
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/users/{id} - Public user profile
	r.Get("/api/users/{id}", userHandler.GetUser)

	// PATCH /api/users/{id} - Update profile fields
	r.Patch("/api/users/{id}", userHandler.UpdateProfile)
}
