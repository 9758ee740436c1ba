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

// SalonService covers salons and their service catalog.
type SalonService interface {
	GetSalons(ctx context.Context, filter repository.SalonFilter) ([]response.SalonResponse, error)
	GetSalon(ctx context.Context, id int) (*response.SalonResponse, error)
	GetSalonsByOwner(ctx context.Context, ownerID int) ([]response.SalonResponse, error)
	CreateSalon(ctx context.Context, req *request.CreateSalonRequest) (*response.SalonResponse, error)
	UpdateSalon(ctx context.Context, id int, req *request.UpdateSalonRequest) (*response.SalonResponse, error)

	GetServicesBySalon(ctx context.Context, salonID int) ([]response.ServiceResponse, error)
	CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, id int, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, id int) error
}

type salonService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSalonService(repo *repository.Repository, log *zap.Logger) SalonService {
	return &salonService{
		repo: repo,
		log:  log.With(zap.String("service", "salon")),
	}
}

func (s *salonService) GetSalons(ctx context.Context, filter repository.SalonFilter) ([]response.SalonResponse, error) {
	salons, err := s.repo.Salon.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list salons: %w", err)
	}
	return response.ToSalonResponses(salons), nil
}

func (s *salonService) GetSalon(ctx context.Context, id int) (*response.SalonResponse, error) {
	salon, err := s.repo.Salon.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find salon: %w", err)
	}
	if salon == nil {
		return nil, fmt.Errorf("salon %d not found", id)
	}

	resp := response.ToSalonResponse(salon)
	return &resp, nil
}

func (s *salonService) GetSalonsByOwner(ctx context.Context, ownerID int) ([]response.SalonResponse, error) {
	salons, err := s.repo.Salon.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list salons by owner: %w", err)
	}
	return response.ToSalonResponses(salons), nil
}

func (s *salonService) CreateSalon(ctx context.Context, req *request.CreateSalonRequest) (*response.SalonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create salon validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	owner, err := s.repo.User.FindByID(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("user %d not found", req.OwnerID)
	}

	salon := &entity.Salon{
		OwnerID:       req.OwnerID,
		NameEn:        req.NameEn,
		NameAr:        req.NameAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Address:       req.Address,
		City:          req.City,
		Phone:         req.Phone,
		Email:         req.Email,
		ImageURL:      req.ImageURL,
		PriceRange:    req.PriceRange,
		CreatedAt:     time.Now(),
	}
	// Ladies-only is the norm for salons here, so it defaults on.
	salon.IsLadiesOnly = true
	if req.IsLadiesOnly != nil {
		salon.IsLadiesOnly = *req.IsLadiesOnly
	}
	if req.HasPrivateRooms != nil {
		salon.HasPrivateRooms = *req.HasPrivateRooms
	}
	if req.IsHijabFriendly != nil {
		salon.IsHijabFriendly = *req.IsHijabFriendly
	}

	if err := s.repo.Salon.Create(ctx, salon); err != nil {
		return nil, fmt.Errorf("create salon: %w", err)
	}

	s.log.Info("Salon created",
		zap.Int("salon_id", salon.ID),
		zap.Int("owner_id", salon.OwnerID),
	)

	resp := response.ToSalonResponse(salon)
	return &resp, nil
}

func (s *salonService) UpdateSalon(ctx context.Context, id int, req *request.UpdateSalonRequest) (*response.SalonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update salon validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	salon, err := s.repo.Salon.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find salon: %w", err)
	}
	if salon == nil {
		return nil, fmt.Errorf("salon %d not found", id)
	}

	if req.NameEn != nil {
		salon.NameEn = *req.NameEn
	}
	if req.NameAr != nil {
		salon.NameAr = *req.NameAr
	}
	if req.DescriptionEn != nil {
		salon.DescriptionEn = req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		salon.DescriptionAr = req.DescriptionAr
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.City != nil {
		salon.City = *req.City
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Email != nil {
		salon.Email = req.Email
	}
	if req.ImageURL != nil {
		salon.ImageURL = req.ImageURL
	}
	if req.IsVerified != nil {
		salon.IsVerified = *req.IsVerified
	}
	if req.IsLadiesOnly != nil {
		salon.IsLadiesOnly = *req.IsLadiesOnly
	}
	if req.HasPrivateRooms != nil {
		salon.HasPrivateRooms = *req.HasPrivateRooms
	}
	if req.IsHijabFriendly != nil {
		salon.IsHijabFriendly = *req.IsHijabFriendly
	}
	if req.PriceRange != nil {
		salon.PriceRange = req.PriceRange
	}

	if err := s.repo.Salon.Update(ctx, salon); err != nil {
		return nil, fmt.Errorf("update salon: %w", err)
	}

	s.log.Info("Salon updated", zap.Int("salon_id", id))

	resp := response.ToSalonResponse(salon)
	return &resp, nil
}

func (s *salonService) GetServicesBySalon(ctx context.Context, salonID int) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindBySalonID(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return response.ToServiceResponses(services), nil
}

func (s *salonService) CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	salon, err := s.repo.Salon.FindByID(ctx, req.SalonID)
	if err != nil {
		return nil, fmt.Errorf("find salon: %w", err)
	}
	if salon == nil {
		return nil, fmt.Errorf("salon %d not found", req.SalonID)
	}

	service := &entity.Service{
		SalonID:       req.SalonID,
		NameEn:        req.NameEn,
		NameAr:        req.NameAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Duration:      req.Duration,
		Price:         req.Price,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.Int("service_id", service.ID),
		zap.Int("salon_id", service.SalonID),
	)

	resp := response.ToServiceResponse(service)
	return &resp, nil
}

func (s *salonService) UpdateService(ctx context.Context, id int, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %d not found", id)
	}

	if req.NameEn != nil {
		service.NameEn = *req.NameEn
	}
	if req.NameAr != nil {
		service.NameAr = *req.NameAr
	}
	if req.DescriptionEn != nil {
		service.DescriptionEn = req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		service.DescriptionAr = req.DescriptionAr
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.ImageURL != nil {
		service.ImageURL = req.ImageURL
	}

	if err := s.repo.Service.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	resp := response.ToServiceResponse(service)
	return &resp, nil
}

func (s *salonService) DeleteService(ctx context.Context, id int) error {
	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return fmt.Errorf("service %d not found", id)
	}

	if err := s.repo.Service.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	s.log.Info("Service deleted", zap.Int("service_id", id))
	return nil
}
