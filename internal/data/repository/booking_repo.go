package repository

import (
	"context"
	"fmt"

	"glamhaven/internal/data/entity"
	"glamhaven/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID int) ([]*entity.Booking, error)
	FindBySalonID(ctx context.Context, salonID int) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id int, status entity.BookingStatus) error
}

const bookingColumns = `id, user_id, salon_id, service_id, datetime, status, notes, points_earned, created_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SalonID,
		&booking.ServiceID,
		&booking.Datetime,
		&booking.Status,
		&booking.Notes,
		&booking.PointsEarned,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (user_id, salon_id, service_id, datetime, status, notes, points_earned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.UserID,
		booking.SalonID,
		booking.ServiceID,
		booking.Datetime,
		booking.Status,
		booking.Notes,
		booking.PointsEarned,
		booking.CreatedAt,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int("user_id", booking.UserID),
			zap.Int("salon_id", booking.SalonID),
		)
		return fmt.Errorf("create booking for user %d: %w", booking.UserID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY datetime DESC`

	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) FindBySalonID(ctx context.Context, salonID int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE salon_id = $1 ORDER BY datetime DESC`

	return r.queryBookings(ctx, query, salonID)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int("booking_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %d status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	return nil
}
