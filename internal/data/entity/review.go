package entity

import "time"

type Review struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	SalonID   int       `db:"salon_id"`
	Rating    int       `db:"rating"` // 1-5
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
