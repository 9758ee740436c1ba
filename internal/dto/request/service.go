package request

type CreateServiceRequest struct {
	SalonID       int     `json:"salonId" validate:"required,min=1"`
	NameEn        string  `json:"nameEn" validate:"required"`
	NameAr        string  `json:"nameAr" validate:"required"`
	DescriptionEn *string `json:"descriptionEn,omitempty"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
	Duration      int     `json:"duration" validate:"required,min=1"`
	Price         int     `json:"price" validate:"required,min=1"`
	Category      string  `json:"category" validate:"required"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}

type UpdateServiceRequest struct {
	NameEn        *string `json:"nameEn,omitempty"`
	NameAr        *string `json:"nameAr,omitempty"`
	DescriptionEn *string `json:"descriptionEn,omitempty"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
	Duration      *int    `json:"duration,omitempty" validate:"omitempty,min=1"`
	Price         *int    `json:"price,omitempty" validate:"omitempty,min=1"`
	Category      *string `json:"category,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}
