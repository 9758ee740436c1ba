package entity

import "time"

type Salon struct {
	ID              int       `db:"id"`
	OwnerID         int       `db:"owner_id"`
	NameEn          string    `db:"name_en"`
	NameAr          string    `db:"name_ar"`
	DescriptionEn   *string   `db:"description_en"`
	DescriptionAr   *string   `db:"description_ar"`
	Address         string    `db:"address"`
	City            string    `db:"city"`
	Phone           string    `db:"phone"`
	Email           *string   `db:"email"`
	Rating          *int      `db:"rating"` // derived from reviews, nil until first review
	ImageURL        *string   `db:"image_url"`
	IsVerified      bool      `db:"is_verified"`
	IsLadiesOnly    bool      `db:"is_ladies_only"`
	HasPrivateRooms bool      `db:"has_private_rooms"`
	IsHijabFriendly bool      `db:"is_hijab_friendly"`
	PriceRange      *string   `db:"price_range"`
	CreatedAt       time.Time `db:"created_at"`
}
