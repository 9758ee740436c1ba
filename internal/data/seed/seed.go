// Package seed loads sample marketplace data on first boot so a fresh
// deployment has browsable salons right away.
package seed

import (
	"context"
	"fmt"
	"time"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/utils"

	"go.uber.org/zap"
)

// Run inserts the sample accounts, salons and services. It is a no-op when
// the admin account already exists.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	existing, err := repo.User.FindByUsername(ctx, "admin")
	if err != nil {
		return fmt.Errorf("check seed marker: %w", err)
	}
	if existing != nil {
		log.Info("Seed data already present, skipping")
		return nil
	}

	log.Info("Seeding sample data")

	adminHash, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	userHash, err := utils.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()

	admin := &entity.User{
		Username:          "admin",
		PasswordHash:      adminHash,
		Email:             "admin@glamhaven.sa",
		FullName:          "Admin User",
		Phone:             ptr("+966501234567"),
		Role:              entity.RoleAdmin,
		PreferredLanguage: "en",
		CreatedAt:         now,
	}
	owner := &entity.User{
		Username:          "salonowner1",
		PasswordHash:      userHash,
		Email:             "owner@elegancespa.sa",
		FullName:          "Sarah Al-Qahtani",
		Phone:             ptr("+966501234568"),
		Role:              entity.RoleSalonOwner,
		PreferredLanguage: "ar",
		CreatedAt:         now,
	}
	customer := &entity.User{
		Username:          "customer1",
		PasswordHash:      userHash,
		Email:             "customer@example.com",
		FullName:          "Fatima Abdullah",
		Phone:             ptr("+966501234569"),
		Role:              entity.RoleCustomer,
		PreferredLanguage: "en",
		CreatedAt:         now,
	}
	for _, u := range []*entity.User{admin, owner, customer} {
		if err := repo.User.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}

	salons := []*entity.Salon{
		{
			OwnerID:         owner.ID,
			NameEn:          "Elegance Beauty Lounge",
			NameAr:          "صالون الأناقة",
			DescriptionEn:   ptr("Premium beauty services in an elegant atmosphere"),
			DescriptionAr:   ptr("خدمات تجميل راقية في أجواء أنيقة"),
			Address:         "King Fahd Road, Riyadh",
			City:            "Riyadh",
			Phone:           "+966512345678",
			Email:           ptr("contact@elegance.sa"),
			IsVerified:      true,
			IsLadiesOnly:    true,
			HasPrivateRooms: true,
			IsHijabFriendly: true,
			PriceRange:      ptr("premium"),
			CreatedAt:       now,
		},
		{
			OwnerID:         owner.ID,
			NameEn:          "Serenity Spa & Beauty",
			NameAr:          "سيرينيتي سبا وبيوتي",
			DescriptionEn:   ptr("Luxury spa treatments and beauty services"),
			DescriptionAr:   ptr("علاجات سبا فاخرة وخدمات تجميل"),
			Address:         "Tahlia Street, Jeddah",
			City:            "Jeddah",
			Phone:           "+966512345679",
			Email:           ptr("info@serenityspa.sa"),
			IsVerified:      true,
			IsLadiesOnly:    true,
			HasPrivateRooms: true,
			IsHijabFriendly: true,
			PriceRange:      ptr("luxury"),
			CreatedAt:       now,
		},
		{
			OwnerID:         owner.ID,
			NameEn:          "Royal Nails & Spa",
			NameAr:          "رويال نيلز آند سبا",
			DescriptionEn:   ptr("Specialized nail care and spa services"),
			DescriptionAr:   ptr("خدمات متخصصة للعناية بالأظافر والسبا"),
			Address:         "Prince Sultan Road, Al Khobar",
			City:            "Al Khobar",
			Phone:           "+966512345680",
			Email:           ptr("book@royalnails.sa"),
			IsVerified:      true,
			IsLadiesOnly:    true,
			HasPrivateRooms: false,
			IsHijabFriendly: true,
			PriceRange:      ptr("mid-range"),
			CreatedAt:       now,
		},
	}
	for _, s := range salons {
		if err := repo.Salon.Create(ctx, s); err != nil {
			return fmt.Errorf("seed salon %s: %w", s.NameEn, err)
		}
	}

	services := []*entity.Service{
		{SalonID: salons[0].ID, NameEn: "Premium Facial Treatment", NameAr: "جلسة تنظيف بشرة فاخرة", Duration: 90, Price: 650, Category: "facial"},
		{SalonID: salons[0].ID, NameEn: "Professional Hair Styling", NameAr: "تصفيف شعر احترافي", Duration: 60, Price: 350, Category: "hair"},
		{SalonID: salons[0].ID, NameEn: "Bridal Package", NameAr: "باقة العروس", Duration: 240, Price: 3000, Category: "bridal"},
		{SalonID: salons[1].ID, NameEn: "Aromatherapy Massage", NameAr: "مساج بالزيوت العطرية", Duration: 60, Price: 400, Category: "massage"},
		{SalonID: salons[1].ID, NameEn: "Anti-Aging Facial", NameAr: "جلسة نضارة ومكافحة الشيخوخة", Duration: 90, Price: 800, Category: "facial"},
		{SalonID: salons[2].ID, NameEn: "Luxury Manicure", NameAr: "مانيكير فاخر", Duration: 60, Price: 200, Category: "nails"},
		{SalonID: salons[2].ID, NameEn: "Deluxe Pedicure", NameAr: "باديكير فاخر", Duration: 75, Price: 250, Category: "nails"},
	}
	for _, svc := range services {
		if err := repo.Service.Create(ctx, svc); err != nil {
			return fmt.Errorf("seed service %s: %w", svc.NameEn, err)
		}
	}

	reviews := []*entity.Review{
		{UserID: customer.ID, SalonID: salons[0].ID, Rating: 5, Comment: ptr("Wonderful experience, very professional staff"), CreatedAt: now},
		{UserID: customer.ID, SalonID: salons[1].ID, Rating: 4, Comment: ptr("Relaxing atmosphere, will come back"), CreatedAt: now},
	}
	for _, rv := range reviews {
		if err := repo.Review.Create(ctx, rv); err != nil {
			return fmt.Errorf("seed review for salon %d: %w", rv.SalonID, err)
		}
		if err := repo.Salon.UpdateRating(ctx, rv.SalonID, rv.Rating); err != nil {
			return fmt.Errorf("seed rating for salon %d: %w", rv.SalonID, err)
		}
	}

	log.Info("Sample data seeded",
		zap.Int("users", 3),
		zap.Int("salons", len(salons)),
		zap.Int("services", len(services)),
		zap.Int("reviews", len(reviews)),
	)
	return nil
}

func ptr(s string) *string {
	return &s
}
