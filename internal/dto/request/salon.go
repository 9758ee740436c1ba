package request

type CreateSalonRequest struct {
	OwnerID         int     `json:"ownerId" validate:"required,min=1"`
	NameEn          string  `json:"nameEn" validate:"required"`
	NameAr          string  `json:"nameAr" validate:"required"`
	DescriptionEn   *string `json:"descriptionEn,omitempty"`
	DescriptionAr   *string `json:"descriptionAr,omitempty"`
	Address         string  `json:"address" validate:"required"`
	City            string  `json:"city" validate:"required"`
	Phone           string  `json:"phone" validate:"required"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	IsLadiesOnly    *bool   `json:"isLadiesOnly,omitempty"`
	HasPrivateRooms *bool   `json:"hasPrivateRooms,omitempty"`
	IsHijabFriendly *bool   `json:"isHijabFriendly,omitempty"`
	PriceRange      *string `json:"priceRange,omitempty"`
}

type UpdateSalonRequest struct {
	NameEn          *string `json:"nameEn,omitempty"`
	NameAr          *string `json:"nameAr,omitempty"`
	DescriptionEn   *string `json:"descriptionEn,omitempty"`
	DescriptionAr   *string `json:"descriptionAr,omitempty"`
	Address         *string `json:"address,omitempty"`
	City            *string `json:"city,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	IsVerified      *bool   `json:"isVerified,omitempty"`
	IsLadiesOnly    *bool   `json:"isLadiesOnly,omitempty"`
	HasPrivateRooms *bool   `json:"hasPrivateRooms,omitempty"`
	IsHijabFriendly *bool   `json:"isHijabFriendly,omitempty"`
	PriceRange      *string `json:"priceRange,omitempty"`
}
