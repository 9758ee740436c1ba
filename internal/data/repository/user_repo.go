package repository

import (
	"context"
	"fmt"

	"glamhaven/internal/data/entity"
	"glamhaven/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	AddLoyaltyPoints(ctx context.Context, id, points int) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record and fills in the generated id
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password, email, full_name, phone, role,
		                   loyalty_points, preferred_language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FullName,
		user.Phone,
		user.Role,
		user.LoyaltyPoints,
		user.PreferredLanguage,
		user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	query := `
		SELECT id, username, password, email, full_name, phone, role,
		       loyalty_points, preferred_language, created_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FullName,
		&user.Phone,
		&user.Role,
		&user.LoyaltyPoints,
		&user.PreferredLanguage,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password, email, full_name, phone, role,
		       loyalty_points, preferred_language, created_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FullName,
		&user.Phone,
		&user.Role,
		&user.LoyaltyPoints,
		&user.PreferredLanguage,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, username, password, email, full_name, phone, role,
		       loyalty_points, preferred_language, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FullName,
		&user.Phone,
		&user.Role,
		&user.LoyaltyPoints,
		&user.PreferredLanguage,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, password = $3, email = $4, full_name = $5,
		    phone = $6, role = $7, loyalty_points = $8, preferred_language = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FullName,
		user.Phone,
		user.Role,
		user.LoyaltyPoints,
		user.PreferredLanguage,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int("user_id", user.ID),
		)
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", user.ID)
	}

	return nil
}

func (r *userRepository) AddLoyaltyPoints(ctx context.Context, id, points int) error {
	query := `UPDATE users SET loyalty_points = loyalty_points + $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, points)
	if err != nil {
		r.log.Error("Failed to add loyalty points",
			zap.Error(err),
			zap.Int("user_id", id),
			zap.Int("points", points),
		)
		return fmt.Errorf("add %d loyalty points to user %d: %w", points, id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}
