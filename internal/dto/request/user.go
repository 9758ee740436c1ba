package request

type UpdateProfileRequest struct {
	FullName          *string `json:"fullName,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	PreferredLanguage *string `json:"preferredLanguage,omitempty" validate:"omitempty,oneof=en ar"`
}
