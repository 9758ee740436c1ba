package memory_test

import (
	"context"
	"testing"
	"time"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/memory"
	"glamhaven/internal/data/repository"

	"github.com/google/uuid"
)

func TestLookupsReturnNilForMissingRows(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	user, err := repo.User.FindByID(ctx, 99)
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) for missing user, got (%v, %v)", user, err)
	}

	salon, err := repo.Salon.FindByID(ctx, 99)
	if err != nil || salon != nil {
		t.Fatalf("expected (nil, nil) for missing salon, got (%v, %v)", salon, err)
	}

	booking, err := repo.Booking.FindByID(ctx, 99)
	if err != nil || booking != nil {
		t.Fatalf("expected (nil, nil) for missing booking, got (%v, %v)", booking, err)
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	first := &entity.User{Username: "amal", Email: "amal@example.com"}
	second := &entity.User{Username: "noor", Email: "noor@example.com"}

	if err := repo.User.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.User.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestUserLookupsAreCaseInsensitive(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	u := &entity.User{Username: "Amal", Email: "Amal@Example.com"}
	if err := repo.User.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	byName, err := repo.User.FindByUsername(ctx, "aMAL")
	if err != nil || byName == nil {
		t.Fatalf("expected case-insensitive username hit, got (%v, %v)", byName, err)
	}

	byEmail, err := repo.User.FindByEmail(ctx, "amal@example.COM")
	if err != nil || byEmail == nil {
		t.Fatalf("expected case-insensitive email hit, got (%v, %v)", byEmail, err)
	}
}

func TestSalonFilterComposesWithAnd(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	mk := func(city string, ladies, private bool) {
		t.Helper()
		s := &entity.Salon{City: city, IsLadiesOnly: ladies, HasPrivateRooms: private}
		if err := repo.Salon.Create(ctx, s); err != nil {
			t.Fatalf("create salon: %v", err)
		}
	}
	mk("Riyadh", true, true)
	mk("Riyadh", true, false)
	mk("Jeddah", true, true)

	yes := true
	city := "riyadh"
	got, err := repo.Salon.FindAll(ctx, repository.SalonFilter{
		City:            &city,
		IsLadiesOnly:    &yes,
		HasPrivateRooms: &yes,
	})
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 salon matching all filters, got %d", len(got))
	}

	// Absent parameters must not constrain anything.
	all, err := repo.Salon.FindAll(ctx, repository.SalonFilter{})
	if err != nil {
		t.Fatalf("find all unfiltered: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 salons unfiltered, got %d", len(all))
	}
}

func TestSessionRevoke(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	sess := &entity.Session{
		UserID:    1,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	if err := repo.Session.Create(ctx, sess); err != nil {
		t.Fatalf("create session: %v", err)
	}

	found, err := repo.Session.FindValidByToken(ctx, sess.Token.String())
	if err != nil || found == nil {
		t.Fatalf("expected valid session, got (%v, %v)", found, err)
	}

	if err := repo.Session.Revoke(ctx, sess.Token.String()); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	found, err = repo.Session.FindValidByToken(ctx, sess.Token.String())
	if err != nil {
		t.Fatalf("lookup after revoke: %v", err)
	}
	if found != nil {
		t.Fatal("expected revoked session to be invisible")
	}
}
