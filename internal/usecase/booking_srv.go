package usecase

import (
	"context"
	"fmt"
	"time"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/repository"
	"glamhaven/internal/dto/request"
	"glamhaven/internal/dto/response"
	"glamhaven/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID int) ([]response.BookingResponse, error)
	GetSalonBookings(ctx context.Context, salonID int) ([]response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, id int, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	datetime, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime %q: must be RFC 3339", req.Datetime)
	}

	user, err := s.repo.User.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", req.UserID)
	}

	salon, err := s.repo.Salon.FindByID(ctx, req.SalonID)
	if err != nil {
		return nil, fmt.Errorf("find salon: %w", err)
	}
	if salon == nil {
		return nil, fmt.Errorf("salon %d not found", req.SalonID)
	}

	status := entity.BookingStatusPending
	if req.Status != nil {
		status = entity.BookingStatus(*req.Status)
	}

	// Placeholder accrual until services carry a price-based points rate.
	points := (req.ServiceID % 10) * 10

	booking := &entity.Booking{
		UserID:       req.UserID,
		SalonID:      req.SalonID,
		ServiceID:    req.ServiceID,
		Datetime:     datetime,
		Status:       status,
		Notes:        req.Notes,
		PointsEarned: &points,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Points accrue at creation time, regardless of how the booking ends up.
	if err := s.repo.User.AddLoyaltyPoints(ctx, req.UserID, points); err != nil {
		s.log.Error("Failed to accrue loyalty points",
			zap.Error(err),
			zap.Int("user_id", req.UserID),
			zap.Int("booking_id", booking.ID),
		)
		return nil, fmt.Errorf("accrue loyalty points: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.ID),
		zap.Int("user_id", booking.UserID),
		zap.Int("salon_id", booking.SalonID),
		zap.Int("points_earned", points),
	)

	resp := response.ToBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	return response.ToBookingResponses(bookings), nil
}

func (s *bookingService) GetSalonBookings(ctx context.Context, salonID int) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindBySalonID(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by salon: %w", err)
	}
	return response.ToBookingResponses(bookings), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id int, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Only membership in the known set is checked; transition legality
	// between statuses is not enforced.
	status := entity.BookingStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status

	s.log.Info("Booking status updated",
		zap.Int("booking_id", id),
		zap.String("status", req.Status),
	)

	resp := response.ToBookingResponse(booking)
	return &resp, nil
}
