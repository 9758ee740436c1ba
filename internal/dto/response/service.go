package response

import "glamhaven/internal/data/entity"

type ServiceResponse struct {
	ID            int     `json:"id"`
	SalonID       int     `json:"salonId"`
	NameEn        string  `json:"nameEn"`
	NameAr        string  `json:"nameAr"`
	DescriptionEn *string `json:"descriptionEn,omitempty"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
	Duration      int     `json:"duration"`
	Price         int     `json:"price"`
	Category      string  `json:"category"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}

func ToServiceResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		SalonID:       s.SalonID,
		NameEn:        s.NameEn,
		NameAr:        s.NameAr,
		DescriptionEn: s.DescriptionEn,
		DescriptionAr: s.DescriptionAr,
		Duration:      s.Duration,
		Price:         s.Price,
		Category:      s.Category,
		ImageURL:      s.ImageURL,
	}
}

func ToServiceResponses(services []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ToServiceResponse(s))
	}
	return out
}
