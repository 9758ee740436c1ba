package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Idempotent schema setup, run once at startup. Enum creation is wrapped in
// a DO block because postgres has no CREATE TYPE IF NOT EXISTS.
var migrations = []string{
	`DO $$ BEGIN
		CREATE TYPE user_role AS ENUM ('customer', 'salon_owner', 'admin');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,

	`DO $$ BEGIN
		CREATE TYPE booking_status AS ENUM ('pending', 'confirmed', 'cancelled', 'completed');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,

	`CREATE TABLE IF NOT EXISTS users (
		id                 SERIAL PRIMARY KEY,
		username           TEXT NOT NULL,
		password           TEXT NOT NULL,
		email              TEXT NOT NULL,
		full_name          TEXT NOT NULL,
		phone              TEXT,
		role               user_role NOT NULL DEFAULT 'customer',
		loyalty_points     INTEGER NOT NULL DEFAULT 0,
		preferred_language TEXT NOT NULL DEFAULT 'en',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_idx ON users (LOWER(username))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users (LOWER(email))`,

	`CREATE TABLE IF NOT EXISTS salons (
		id                SERIAL PRIMARY KEY,
		owner_id          INTEGER NOT NULL REFERENCES users (id),
		name_en           TEXT NOT NULL,
		name_ar           TEXT NOT NULL,
		description_en    TEXT,
		description_ar    TEXT,
		address           TEXT NOT NULL,
		city              TEXT NOT NULL,
		phone             TEXT NOT NULL,
		email             TEXT,
		rating            INTEGER,
		image_url         TEXT,
		is_verified       BOOLEAN NOT NULL DEFAULT FALSE,
		is_ladies_only    BOOLEAN NOT NULL DEFAULT TRUE,
		has_private_rooms BOOLEAN NOT NULL DEFAULT FALSE,
		is_hijab_friendly BOOLEAN NOT NULL DEFAULT FALSE,
		price_range       TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS services (
		id             SERIAL PRIMARY KEY,
		salon_id       INTEGER NOT NULL REFERENCES salons (id),
		name_en        TEXT NOT NULL,
		name_ar        TEXT NOT NULL,
		description_en TEXT,
		description_ar TEXT,
		duration       INTEGER NOT NULL,
		price          INTEGER NOT NULL,
		category       TEXT NOT NULL,
		image_url      TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id            SERIAL PRIMARY KEY,
		user_id       INTEGER NOT NULL REFERENCES users (id),
		salon_id      INTEGER NOT NULL REFERENCES salons (id),
		service_id    INTEGER NOT NULL,
		datetime      TIMESTAMPTZ NOT NULL,
		status        booking_status NOT NULL DEFAULT 'pending',
		notes         TEXT,
		points_earned INTEGER,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER NOT NULL REFERENCES users (id),
		salon_id   INTEGER NOT NULL REFERENCES salons (id),
		rating     INTEGER NOT NULL,
		comment    TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER NOT NULL REFERENCES users (id),
		token      UUID NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, db PgxIface, log *zap.Logger) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Error("Migration failed", zap.Error(err), zap.Int("statement", i))
			return fmt.Errorf("apply migration %d: %w", i, err)
		}
	}

	log.Info("Migrations applied", zap.Int("statements", len(migrations)))
	return nil
}
