package response

import (
	"time"

	"glamhaven/internal/data/entity"
)

type BookingResponse struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	SalonID      int       `json:"salonId"`
	ServiceID    int       `json:"serviceId"`
	Datetime     time.Time `json:"datetime"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes,omitempty"`
	PointsEarned *int      `json:"pointsEarned"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToBookingResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		SalonID:      b.SalonID,
		ServiceID:    b.ServiceID,
		Datetime:     b.Datetime,
		Status:       string(b.Status),
		Notes:        b.Notes,
		PointsEarned: b.PointsEarned,
		CreatedAt:    b.CreatedAt,
	}
}

func ToBookingResponses(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}
