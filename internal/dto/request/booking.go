package request

type CreateBookingRequest struct {
	UserID    int     `json:"userId" validate:"required,min=1"`
	SalonID   int     `json:"salonId" validate:"required,min=1"`
	ServiceID int     `json:"serviceId" validate:"required,min=1"`
	Datetime  string  `json:"datetime" validate:"required"` // RFC 3339
	Notes     *string `json:"notes,omitempty"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
