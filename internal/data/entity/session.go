package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID        int        `db:"id"`
	UserID    int        `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}
