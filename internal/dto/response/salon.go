package response

import (
	"time"

	"glamhaven/internal/data/entity"
)

type SalonResponse struct {
	ID              int       `json:"id"`
	OwnerID         int       `json:"ownerId"`
	NameEn          string    `json:"nameEn"`
	NameAr          string    `json:"nameAr"`
	DescriptionEn   *string   `json:"descriptionEn,omitempty"`
	DescriptionAr   *string   `json:"descriptionAr,omitempty"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email,omitempty"`
	Rating          *int      `json:"rating"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	IsVerified      bool      `json:"isVerified"`
	IsLadiesOnly    bool      `json:"isLadiesOnly"`
	HasPrivateRooms bool      `json:"hasPrivateRooms"`
	IsHijabFriendly bool      `json:"isHijabFriendly"`
	PriceRange      *string   `json:"priceRange,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ToSalonResponse(s *entity.Salon) SalonResponse {
	return SalonResponse{
		ID:              s.ID,
		OwnerID:         s.OwnerID,
		NameEn:          s.NameEn,
		NameAr:          s.NameAr,
		DescriptionEn:   s.DescriptionEn,
		DescriptionAr:   s.DescriptionAr,
		Address:         s.Address,
		City:            s.City,
		Phone:           s.Phone,
		Email:           s.Email,
		Rating:          s.Rating,
		ImageURL:        s.ImageURL,
		IsVerified:      s.IsVerified,
		IsLadiesOnly:    s.IsLadiesOnly,
		HasPrivateRooms: s.HasPrivateRooms,
		IsHijabFriendly: s.IsHijabFriendly,
		PriceRange:      s.PriceRange,
		CreatedAt:       s.CreatedAt,
	}
}

func ToSalonResponses(salons []*entity.Salon) []SalonResponse {
	out := make([]SalonResponse, 0, len(salons))
	for _, s := range salons {
		out = append(out, ToSalonResponse(s))
	}
	return out
}
