package response

import (
	"time"

	"glamhaven/internal/data/entity"
)

// UserResponse is the public view of a user. The password hash never
// leaves the usecase layer.
type UserResponse struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FullName          string    `json:"fullName"`
	Phone             *string   `json:"phone,omitempty"`
	Role              string    `json:"role"`
	LoyaltyPoints     int       `json:"loyaltyPoints"`
	PreferredLanguage string    `json:"preferredLanguage"`
	CreatedAt         time.Time `json:"createdAt"`
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FullName:          u.FullName,
		Phone:             u.Phone,
		Role:              string(u.Role),
		LoyaltyPoints:     u.LoyaltyPoints,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}
