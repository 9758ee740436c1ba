package request

type RegisterRequest struct {
	Username          string  `json:"username" validate:"required,min=3,max=50"`
	Password          string  `json:"password" validate:"required,min=6"`
	Email             string  `json:"email" validate:"required,email"`
	FullName          string  `json:"fullName" validate:"required"`
	Phone             *string `json:"phone,omitempty"`
	Role              string  `json:"role,omitempty" validate:"omitempty,oneof=customer salon_owner admin"`
	PreferredLanguage string  `json:"preferredLanguage,omitempty" validate:"omitempty,oneof=en ar"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}
