package repository

import (
	"glamhaven/pkg/database"

	"go.uber.org/zap"
)

// Repository groups every entity repository behind one seam. The postgres
// implementations live in this package; internal/data/memory provides a
// map-backed set of the same interfaces for tests.
type Repository struct {
	User    UserRepository
	Salon   SalonRepository
	Service ServiceRepository
	Booking BookingRepository
	Review  ReviewRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Salon:   NewSalonRepository(db, log),
		Service: NewServiceRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
