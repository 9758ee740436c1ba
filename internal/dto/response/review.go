package response

import (
	"time"

	"glamhaven/internal/data/entity"
)

type ReviewResponse struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	SalonID   int       `json:"salonId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		SalonID:   r.SalonID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func ToReviewResponses(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ToReviewResponse(r))
	}
	return out
}
