package wire

import (
	"glamhaven/internal/adaptor"
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSalon(
	r chi.Router,
	salonHandler *adaptor.SalonHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/salons - List salons, optionally filtered
	r.Get("/api/salons", salonHandler.GetSalons)

	// GET /api/salons/owner/{ownerId} - Salons run by one owner
	r.Get("/api/salons/owner/{ownerId}", salonHandler.GetSalonsByOwner)

	// GET /api/salons/{id} - Single salon
	r.Get("/api/salons/{id}", salonHandler.GetSalon)

	// POST /api/salons - Register a salon
	r.Post("/api/salons", salonHandler.CreateSalon)

	// PATCH /api/salons/{id} - Update salon fields
	r.Patch("/api/salons/{id}", salonHandler.UpdateSalon)

	// GET /api/services/salon/{salonId} - Catalog of one salon
	r.Get("/api/services/salon/{salonId}", salonHandler.GetServices)

	// POST /api/services - Add a service to a salon
	r.Post("/api/services", salonHandler.CreateService)

	// PATCH /api/services/{id} - Update service fields
	r.Patch("/api/services/{id}", salonHandler.UpdateService)

	// DELETE /api/services/{id} - Remove a service
	r.Delete("/api/services/{id}", salonHandler.DeleteService)
}
