package repository

import (
	"context"
	"fmt"

	"glamhaven/internal/data/entity"
	"glamhaven/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindBySalonID(ctx context.Context, salonID int) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID int) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, salon_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.SalonID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int("user_id", review.UserID),
			zap.Int("salon_id", review.SalonID),
		)
		return fmt.Errorf("create review for salon %d: %w", review.SalonID, err)
	}

	return nil
}

func (r *reviewRepository) FindBySalonID(ctx context.Context, salonID int) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, salon_id, rating, comment, created_at
		FROM reviews
		WHERE salon_id = $1
		ORDER BY created_at DESC
	`

	return r.queryReviews(ctx, query, salonID)
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID int) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, salon_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return r.queryReviews(ctx, query, userID)
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reviews", zap.Error(err))
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.SalonID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
