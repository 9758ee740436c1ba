package usecase_test

import (
	"context"
	"strings"
	"testing"

	"glamhaven/internal/dto/request"
)

func TestReviewUpdatesSalonRating(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")
	salon := seedSalon(t, repo, user.ID, "Riyadh")

	leave := func(rating int) {
		t.Helper()
		_, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
			UserID:  user.ID,
			SalonID: salon.ID,
			Rating:  rating,
		})
		if err != nil {
			t.Fatalf("create review: %v", err)
		}
	}
	ratingNow := func() int {
		t.Helper()
		s, err := repo.Salon.FindByID(ctx, salon.ID)
		if err != nil || s == nil {
			t.Fatalf("reload salon: (%v, %v)", s, err)
		}
		if s.Rating == nil {
			t.Fatal("expected a rating after reviews")
		}
		return *s.Rating
	}

	leave(5)
	if got := ratingNow(); got != 5 {
		t.Errorf("after [5]: expected rating 5, got %d", got)
	}

	// 4.5 rounds half away from zero.
	leave(4)
	if got := ratingNow(); got != 5 {
		t.Errorf("after [5 4]: expected rating 5, got %d", got)
	}

	leave(3)
	if got := ratingNow(); got != 4 {
		t.Errorf("after [5 4 3]: expected rating 4, got %d", got)
	}
}

func TestReviewRequiresExistingSalon(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")

	_, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
		UserID:  user.ID,
		SalonID: 999,
		Rating:  5,
	})
	if err == nil || !strings.Contains(err.Error(), "salon 999 not found") {
		t.Errorf("expected unknown salon error, got %v", err)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")
	salon := seedSalon(t, repo, user.ID, "Riyadh")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
			UserID:  user.ID,
			SalonID: salon.ID,
			Rating:  rating,
		})
		if err == nil {
			t.Errorf("expected rating %d to be rejected", rating)
		}
	}

	reviews, err := svc.Review.GetSalonReviews(ctx, salon.ID)
	if err != nil {
		t.Fatalf("list reviews: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("expected no stored reviews, got %d", len(reviews))
	}
}

func TestReviewListings(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	amal := seedUser(t, repo, "amal")
	noor := seedUser(t, repo, "noor")
	salon := seedSalon(t, repo, amal.ID, "Riyadh")
	other := seedSalon(t, repo, amal.ID, "Jeddah")

	mk := func(userID, salonID, rating int) {
		t.Helper()
		_, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
			UserID: userID, SalonID: salonID, Rating: rating,
		})
		if err != nil {
			t.Fatalf("create review: %v", err)
		}
	}
	mk(amal.ID, salon.ID, 5)
	mk(noor.ID, salon.ID, 4)
	mk(amal.ID, other.ID, 3)

	bySalon, err := svc.Review.GetSalonReviews(ctx, salon.ID)
	if err != nil {
		t.Fatalf("by salon: %v", err)
	}
	if len(bySalon) != 2 {
		t.Errorf("expected 2 reviews for salon, got %d", len(bySalon))
	}

	byUser, err := svc.Review.GetUserReviews(ctx, amal.ID)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("expected 2 reviews by amal, got %d", len(byUser))
	}
}
