package request

type CreateReviewRequest struct {
	UserID  int     `json:"userId" validate:"required,min=1"`
	SalonID int     `json:"salonId" validate:"required,min=1"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}
