package usecase

import (
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Salon   SalonService
	Booking BookingService
	Review  ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Salon:   NewSalonService(repo, log),
		Booking: NewBookingService(repo, log),
		Review:  NewReviewService(repo, log),
	}
}
