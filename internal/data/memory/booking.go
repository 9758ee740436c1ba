package memory

import (
	"context"
	"fmt"
	"sort"

	"glamhaven/internal/data/entity"
)

type bookingRepo struct {
	s *store
}

func (r *bookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.bookingSeq++
	booking.ID = r.s.bookingSeq
	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id int) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *bookingRepo) FindByUserID(ctx context.Context, userID int) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range r.s.bookings {
		if booking.UserID == userID {
			b := booking
			bookings = append(bookings, &b)
		}
	}

	sort.Slice(bookings, func(i, j int) bool { return bookings[i].Datetime.After(bookings[j].Datetime) })
	return bookings, nil
}

func (r *bookingRepo) FindBySalonID(ctx context.Context, salonID int) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range r.s.bookings {
		if booking.SalonID == salonID {
			b := booking
			bookings = append(bookings, &b)
		}
	}

	sort.Slice(bookings, func(i, j int) bool { return bookings[i].Datetime.After(bookings[j].Datetime) })
	return bookings, nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id int, status entity.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return fmt.Errorf("booking %d not found", id)
	}
	booking.Status = status
	r.s.bookings[id] = booking
	return nil
}
