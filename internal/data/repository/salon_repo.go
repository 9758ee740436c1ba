package repository

import (
	"context"
	"fmt"
	"strings"

	"glamhaven/internal/data/entity"
	"glamhaven/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SalonFilter is an AND-composed equality filter. Nil fields are omitted from
// the predicate entirely, they are never treated as false.
type SalonFilter struct {
	IsLadiesOnly    *bool
	HasPrivateRooms *bool
	IsHijabFriendly *bool
	City            *string
}

type SalonRepository interface {
	Create(ctx context.Context, salon *entity.Salon) error
	FindByID(ctx context.Context, id int) (*entity.Salon, error)
	FindAll(ctx context.Context, filter SalonFilter) ([]*entity.Salon, error)
	FindByOwnerID(ctx context.Context, ownerID int) ([]*entity.Salon, error)
	Update(ctx context.Context, salon *entity.Salon) error
	UpdateRating(ctx context.Context, id, rating int) error
}

const salonColumns = `id, owner_id, name_en, name_ar, description_en, description_ar,
	       address, city, phone, email, rating, image_url, is_verified,
	       is_ladies_only, has_private_rooms, is_hijab_friendly, price_range, created_at`

type salonRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSalonRepository(db database.PgxIface, log *zap.Logger) SalonRepository {
	return &salonRepository{
		db:  db,
		log: log.With(zap.String("repository", "salon")),
	}
}

func scanSalon(row pgx.Row) (*entity.Salon, error) {
	var salon entity.Salon
	err := row.Scan(
		&salon.ID,
		&salon.OwnerID,
		&salon.NameEn,
		&salon.NameAr,
		&salon.DescriptionEn,
		&salon.DescriptionAr,
		&salon.Address,
		&salon.City,
		&salon.Phone,
		&salon.Email,
		&salon.Rating,
		&salon.ImageURL,
		&salon.IsVerified,
		&salon.IsLadiesOnly,
		&salon.HasPrivateRooms,
		&salon.IsHijabFriendly,
		&salon.PriceRange,
		&salon.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *salonRepository) Create(ctx context.Context, salon *entity.Salon) error {
	query := `
		INSERT INTO salons (owner_id, name_en, name_ar, description_en, description_ar,
		                    address, city, phone, email, rating, image_url, is_verified,
		                    is_ladies_only, has_private_rooms, is_hijab_friendly, price_range, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		salon.OwnerID,
		salon.NameEn,
		salon.NameAr,
		salon.DescriptionEn,
		salon.DescriptionAr,
		salon.Address,
		salon.City,
		salon.Phone,
		salon.Email,
		salon.Rating,
		salon.ImageURL,
		salon.IsVerified,
		salon.IsLadiesOnly,
		salon.HasPrivateRooms,
		salon.IsHijabFriendly,
		salon.PriceRange,
		salon.CreatedAt,
	).Scan(&salon.ID)

	if err != nil {
		r.log.Error("Failed to create salon",
			zap.Error(err),
			zap.String("name_en", salon.NameEn),
			zap.Int("owner_id", salon.OwnerID),
		)
		return fmt.Errorf("create salon %s: %w", salon.NameEn, err)
	}

	return nil
}

func (r *salonRepository) FindByID(ctx context.Context, id int) (*entity.Salon, error) {
	query := `SELECT ` + salonColumns + ` FROM salons WHERE id = $1`

	salon, err := scanSalon(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find salon by ID",
			zap.Error(err),
			zap.Int("salon_id", id),
		)
		return nil, fmt.Errorf("find salon by ID %d: %w", id, err)
	}

	return salon, nil
}

func (r *salonRepository) FindAll(ctx context.Context, filter SalonFilter) ([]*entity.Salon, error) {
	var conditions []string
	var args []any

	if filter.IsLadiesOnly != nil {
		args = append(args, *filter.IsLadiesOnly)
		conditions = append(conditions, fmt.Sprintf("is_ladies_only = $%d", len(args)))
	}
	if filter.HasPrivateRooms != nil {
		args = append(args, *filter.HasPrivateRooms)
		conditions = append(conditions, fmt.Sprintf("has_private_rooms = $%d", len(args)))
	}
	if filter.IsHijabFriendly != nil {
		args = append(args, *filter.IsHijabFriendly)
		conditions = append(conditions, fmt.Sprintf("is_hijab_friendly = $%d", len(args)))
	}
	if filter.City != nil {
		args = append(args, *filter.City)
		conditions = append(conditions, fmt.Sprintf("LOWER(city) = LOWER($%d)", len(args)))
	}

	query := `SELECT ` + salonColumns + ` FROM salons`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find salons", zap.Error(err))
		return nil, fmt.Errorf("find salons: %w", err)
	}
	defer rows.Close()

	var salons []*entity.Salon
	for rows.Next() {
		salon, err := scanSalon(rows)
		if err != nil {
			r.log.Error("Failed to scan salon row", zap.Error(err))
			return nil, fmt.Errorf("scan salon row: %w", err)
		}
		salons = append(salons, salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salon rows: %w", err)
	}

	return salons, nil
}

func (r *salonRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]*entity.Salon, error) {
	query := `SELECT ` + salonColumns + ` FROM salons WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find salons by owner",
			zap.Error(err),
			zap.Int("owner_id", ownerID),
		)
		return nil, fmt.Errorf("find salons by owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	var salons []*entity.Salon
	for rows.Next() {
		salon, err := scanSalon(rows)
		if err != nil {
			r.log.Error("Failed to scan salon row", zap.Error(err))
			return nil, fmt.Errorf("scan salon row: %w", err)
		}
		salons = append(salons, salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salon rows: %w", err)
	}

	return salons, nil
}

func (r *salonRepository) Update(ctx context.Context, salon *entity.Salon) error {
	query := `
		UPDATE salons
		SET name_en = $2, name_ar = $3, description_en = $4, description_ar = $5,
		    address = $6, city = $7, phone = $8, email = $9, rating = $10,
		    image_url = $11, is_verified = $12, is_ladies_only = $13,
		    has_private_rooms = $14, is_hijab_friendly = $15, price_range = $16
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		salon.ID,
		salon.NameEn,
		salon.NameAr,
		salon.DescriptionEn,
		salon.DescriptionAr,
		salon.Address,
		salon.City,
		salon.Phone,
		salon.Email,
		salon.Rating,
		salon.ImageURL,
		salon.IsVerified,
		salon.IsLadiesOnly,
		salon.HasPrivateRooms,
		salon.IsHijabFriendly,
		salon.PriceRange,
	)

	if err != nil {
		r.log.Error("Failed to update salon",
			zap.Error(err),
			zap.Int("salon_id", salon.ID),
		)
		return fmt.Errorf("update salon %d: %w", salon.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("salon %d not found", salon.ID)
	}

	return nil
}

func (r *salonRepository) UpdateRating(ctx context.Context, id, rating int) error {
	query := `UPDATE salons SET rating = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, rating)
	if err != nil {
		r.log.Error("Failed to update salon rating",
			zap.Error(err),
			zap.Int("salon_id", id),
			zap.Int("rating", rating),
		)
		return fmt.Errorf("update salon %d rating: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("salon %d not found", id)
	}

	return nil
}
