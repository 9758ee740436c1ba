package wire

import (
	"glamhaven/internal/adaptor"
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/bookings - Book a slot
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/user/{userId} - Bookings made by a user
	r.Get("/api/bookings/user/{userId}", bookingHandler.GetUserBookings)

	// GET /api/bookings/salon/{salonId} - Bookings at a salon
	r.Get("/api/bookings/salon/{salonId}", bookingHandler.GetSalonBookings)

	// PATCH /api/bookings/{id}/status - Move a booking to another status
	r.Patch("/api/bookings/{id}/status", bookingHandler.UpdateBookingStatus)
}
