package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsValid reports whether s is one of the four known status literals.
// Transition legality between statuses is intentionally not checked anywhere.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID           int           `db:"id"`
	UserID       int           `db:"user_id"`
	SalonID      int           `db:"salon_id"`
	ServiceID    int           `db:"service_id"`
	Datetime     time.Time     `db:"datetime"`
	Status       BookingStatus `db:"status"`
	Notes        *string       `db:"notes"`
	PointsEarned *int          `db:"points_earned"`
	CreatedAt    time.Time     `db:"created_at"`
}
