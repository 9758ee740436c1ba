package entity

type Service struct {
	ID            int     `db:"id"`
	SalonID       int     `db:"salon_id"`
	NameEn        string  `db:"name_en"`
	NameAr        string  `db:"name_ar"`
	DescriptionEn *string `db:"description_en"`
	DescriptionAr *string `db:"description_ar"`
	Duration      int     `db:"duration"` // minutes
	Price         int     `db:"price"`    // SAR
	Category      string  `db:"category"`
	ImageURL      *string `db:"image_url"`
}
