package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/repository"
	"glamhaven/internal/dto/request"
	"glamhaven/internal/dto/response"
	"glamhaven/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetSalonReviews(ctx context.Context, salonID int) ([]response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, userID int) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	salon, err := s.repo.Salon.FindByID(ctx, req.SalonID)
	if err != nil {
		return nil, fmt.Errorf("find salon: %w", err)
	}
	if salon == nil {
		return nil, fmt.Errorf("salon %d not found", req.SalonID)
	}

	review := &entity.Review{
		UserID:    req.UserID,
		SalonID:   req.SalonID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	// Rating refresh is best effort. The review is already stored; a failed
	// refresh leaves the old aggregate until the next review comes in.
	if err := s.refreshSalonRating(ctx, req.SalonID); err != nil {
		s.log.Warn("Failed to refresh salon rating",
			zap.Error(err),
			zap.Int("salon_id", req.SalonID),
		)
	}

	s.log.Info("Review created",
		zap.Int("review_id", review.ID),
		zap.Int("salon_id", review.SalonID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ToReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) GetSalonReviews(ctx context.Context, salonID int) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindBySalonID(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by salon: %w", err)
	}
	return response.ToReviewResponses(reviews), nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID int) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by user: %w", err)
	}
	return response.ToReviewResponses(reviews), nil
}

// refreshSalonRating rescans every review for the salon and overwrites the
// stored aggregate with the rounded mean.
func (s *reviewService) refreshSalonRating(ctx context.Context, salonID int) error {
	reviews, err := s.repo.Review.FindBySalonID(ctx, salonID)
	if err != nil {
		return fmt.Errorf("list reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	rating := int(math.Round(float64(sum) / float64(len(reviews))))

	return s.repo.Salon.UpdateRating(ctx, salonID, rating)
}
