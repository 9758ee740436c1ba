// Package memory holds map-backed implementations of the repository
// interfaces. Ids come from per-entity monotonically increasing counters so
// behavior mirrors the serial columns of the postgres backend: lookups return
// (nil, nil) when the id is absent and Create returns the full persisted
// record including the generated id. Used as the test double; production
// always wires postgres.
package memory

import (
	"sync"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/repository"
)

type store struct {
	mu sync.RWMutex

	users    map[int]entity.User
	salons   map[int]entity.Salon
	services map[int]entity.Service
	bookings map[int]entity.Booking
	reviews  map[int]entity.Review
	sessions map[int]entity.Session

	userSeq    int
	salonSeq   int
	serviceSeq int
	bookingSeq int
	reviewSeq  int
	sessionSeq int
}

// NewRepository returns a Repository whose every member shares one store.
func NewRepository() *repository.Repository {
	s := &store{
		users:    make(map[int]entity.User),
		salons:   make(map[int]entity.Salon),
		services: make(map[int]entity.Service),
		bookings: make(map[int]entity.Booking),
		reviews:  make(map[int]entity.Review),
		sessions: make(map[int]entity.Session),
	}

	return &repository.Repository{
		User:    &userRepo{s},
		Salon:   &salonRepo{s},
		Service: &serviceRepo{s},
		Booking: &bookingRepo{s},
		Review:  &reviewRepo{s},
		Session: &sessionRepo{s},
	}
}
