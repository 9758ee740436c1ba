package entity

import "time"

type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleSalonOwner UserRole = "salon_owner"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID                int       `db:"id"`
	Username          string    `db:"username"`
	PasswordHash      string    `db:"password"`
	Email             string    `db:"email"`
	FullName          string    `db:"full_name"`
	Phone             *string   `db:"phone"`
	Role              UserRole  `db:"role"`
	LoyaltyPoints     int       `db:"loyalty_points"`
	PreferredLanguage string    `db:"preferred_language"`
	CreatedAt         time.Time `db:"created_at"`
}
