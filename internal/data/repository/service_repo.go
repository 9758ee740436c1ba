package repository

import (
	"context"
	"fmt"

	"glamhaven/internal/data/entity"
	"glamhaven/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id int) (*entity.Service, error)
	FindBySalonID(ctx context.Context, salonID int) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int) error
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (salon_id, name_en, name_ar, description_en, description_ar,
		                      duration, price, category, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		service.SalonID,
		service.NameEn,
		service.NameAr,
		service.DescriptionEn,
		service.DescriptionAr,
		service.Duration,
		service.Price,
		service.Category,
		service.ImageURL,
	).Scan(&service.ID)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name_en", service.NameEn),
			zap.Int("salon_id", service.SalonID),
		)
		return fmt.Errorf("create service %s: %w", service.NameEn, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id int) (*entity.Service, error) {
	query := `
		SELECT id, salon_id, name_en, name_ar, description_en, description_ar,
		       duration, price, category, image_url
		FROM services
		WHERE id = $1
	`

	var service entity.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.SalonID,
		&service.NameEn,
		&service.NameAr,
		&service.DescriptionEn,
		&service.DescriptionAr,
		&service.Duration,
		&service.Price,
		&service.Category,
		&service.ImageURL,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.Int("service_id", id),
		)
		return nil, fmt.Errorf("find service by ID %d: %w", id, err)
	}

	return &service, nil
}

func (r *serviceRepository) FindBySalonID(ctx context.Context, salonID int) ([]*entity.Service, error) {
	query := `
		SELECT id, salon_id, name_en, name_ar, description_en, description_ar,
		       duration, price, category, image_url
		FROM services
		WHERE salon_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, salonID)
	if err != nil {
		r.log.Error("Failed to find services by salon",
			zap.Error(err),
			zap.Int("salon_id", salonID),
		)
		return nil, fmt.Errorf("find services by salon %d: %w", salonID, err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.SalonID,
			&service.NameEn,
			&service.NameAr,
			&service.DescriptionEn,
			&service.DescriptionAr,
			&service.Duration,
			&service.Price,
			&service.Category,
			&service.ImageURL,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services
		SET name_en = $2, name_ar = $3, description_en = $4, description_ar = $5,
		    duration = $6, price = $7, category = $8, image_url = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		service.ID,
		service.NameEn,
		service.NameAr,
		service.DescriptionEn,
		service.DescriptionAr,
		service.Duration,
		service.Price,
		service.Category,
		service.ImageURL,
	)

	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.Int("service_id", service.ID),
		)
		return fmt.Errorf("update service %d: %w", service.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %d not found", service.ID)
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM services WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.Int("service_id", id),
		)
		return fmt.Errorf("delete service %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %d not found", id)
	}

	r.log.Info("Service deleted", zap.Int("service_id", id))
	return nil
}
