package wire

import (
	"glamhaven/internal/adaptor"
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/reviews - Leave a review and refresh the salon rating
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// GET /api/reviews/salon/{salonId} - Reviews for a salon
	r.Get("/api/reviews/salon/{salonId}", reviewHandler.GetSalonReviews)

	// GET /api/reviews/user/{userId} - Reviews written by a user
	r.Get("/api/reviews/user/{userId}", reviewHandler.GetUserReviews)
}
