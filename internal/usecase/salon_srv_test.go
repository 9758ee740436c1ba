package usecase_test

import (
	"context"
	"strings"
	"testing"

	"glamhaven/internal/data/repository"
	"glamhaven/internal/dto/request"
)

func TestCreateSalonRequiresOwner(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner")

	created, err := svc.Salon.CreateSalon(ctx, &request.CreateSalonRequest{
		OwnerID: owner.ID,
		NameEn:  "Glow Studio",
		NameAr:  "استوديو جلو",
		Address: "Olaya Street",
		City:    "Riyadh",
		Phone:   "+966500000001",
	})
	if err != nil {
		t.Fatalf("create salon: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned salon id")
	}
	if created.Rating != nil {
		t.Error("expected no rating before any review")
	}

	_, err = svc.Salon.CreateSalon(ctx, &request.CreateSalonRequest{
		OwnerID: 999,
		NameEn:  "Ghost Salon",
		NameAr:  "صالون",
		Address: "Nowhere",
		City:    "Riyadh",
		Phone:   "+966500000002",
	})
	if err == nil || !strings.Contains(err.Error(), "user 999 not found") {
		t.Errorf("expected unknown owner error, got %v", err)
	}
}

func TestCreateSalonLadiesOnlyDefaultsTrue(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner")

	created, err := svc.Salon.CreateSalon(ctx, &request.CreateSalonRequest{
		OwnerID: owner.ID,
		NameEn:  "Glow Studio",
		NameAr:  "استوديو جلو",
		Address: "Olaya Street",
		City:    "Riyadh",
		Phone:   "+966500000001",
	})
	if err != nil {
		t.Fatalf("create salon: %v", err)
	}

	if !created.IsLadiesOnly {
		t.Error("expected isLadiesOnly to default true when omitted")
	}
	// The other flags stay off unless asked for.
	if created.HasPrivateRooms || created.IsHijabFriendly {
		t.Errorf("expected other flags to default false, got %+v", created)
	}

	// A newly created salon shows up in the ladies-only listing.
	yes := true
	listed, err := svc.Salon.GetSalons(ctx, repository.SalonFilter{IsLadiesOnly: &yes})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("expected the new salon under isLadiesOnly=true, got %+v", listed)
	}

	// An explicit false still wins over the default.
	no := false
	optedOut, err := svc.Salon.CreateSalon(ctx, &request.CreateSalonRequest{
		OwnerID:      owner.ID,
		NameEn:       "Mixed Studio",
		NameAr:       "استوديو",
		Address:      "Tahlia Street",
		City:         "Jeddah",
		Phone:        "+966500000002",
		IsLadiesOnly: &no,
	})
	if err != nil {
		t.Fatalf("create opted-out salon: %v", err)
	}
	if optedOut.IsLadiesOnly {
		t.Error("expected explicit false to override the default")
	}
}

func TestGetSalonsFilters(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner")
	riyadh := seedSalon(t, repo, owner.ID, "Riyadh")
	seedSalon(t, repo, owner.ID, "Jeddah")

	riyadh2, err := repo.Salon.FindByID(ctx, riyadh.ID)
	if err != nil || riyadh2 == nil {
		t.Fatalf("reload salon: (%v, %v)", riyadh2, err)
	}
	riyadh2.IsLadiesOnly = true
	if err := repo.Salon.Update(ctx, riyadh2); err != nil {
		t.Fatalf("flag salon: %v", err)
	}

	city := "RIYADH"
	got, err := svc.Salon.GetSalons(ctx, repository.SalonFilter{City: &city})
	if err != nil {
		t.Fatalf("filter by city: %v", err)
	}
	if len(got) != 1 || got[0].City != "Riyadh" {
		t.Errorf("expected the Riyadh salon regardless of case, got %+v", got)
	}

	yes := true
	got, err = svc.Salon.GetSalons(ctx, repository.SalonFilter{IsLadiesOnly: &yes})
	if err != nil {
		t.Fatalf("filter by flag: %v", err)
	}
	if len(got) != 1 || got[0].ID != riyadh.ID {
		t.Errorf("expected only the flagged salon, got %+v", got)
	}

	no := false
	got, err = svc.Salon.GetSalons(ctx, repository.SalonFilter{IsLadiesOnly: &no})
	if err != nil {
		t.Fatalf("filter by false flag: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("explicit false must match only unflagged salons, got %d", len(got))
	}

	all, err := svc.Salon.GetSalons(ctx, repository.SalonFilter{})
	if err != nil {
		t.Fatalf("unfiltered: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected both salons unfiltered, got %d", len(all))
	}
}

func TestUpdateSalonPartial(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner")
	salon := seedSalon(t, repo, owner.ID, "Riyadh")

	name := "Renamed Lounge"
	verified := true
	updated, err := svc.Salon.UpdateSalon(ctx, salon.ID, &request.UpdateSalonRequest{
		NameEn:     &name,
		IsVerified: &verified,
	})
	if err != nil {
		t.Fatalf("update salon: %v", err)
	}

	if updated.NameEn != "Renamed Lounge" || !updated.IsVerified {
		t.Errorf("expected patched fields applied, got %+v", updated)
	}
	// Untouched fields keep their values.
	if updated.City != "Riyadh" || updated.NameAr != salon.NameAr {
		t.Errorf("expected untouched fields preserved, got %+v", updated)
	}

	_, err = svc.Salon.UpdateSalon(ctx, 999, &request.UpdateSalonRequest{NameEn: &name})
	if err == nil || !strings.Contains(err.Error(), "salon 999 not found") {
		t.Errorf("expected unknown salon error, got %v", err)
	}
}

func TestGetSalonsByOwner(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner")
	other := seedUser(t, repo, "other")
	seedSalon(t, repo, owner.ID, "Riyadh")
	seedSalon(t, repo, owner.ID, "Jeddah")
	seedSalon(t, repo, other.ID, "Dammam")

	mine, err := svc.Salon.GetSalonsByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("by owner: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 salons for owner, got %d", len(mine))
	}
}

func TestServiceCatalogLifecycle(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner")
	salon := seedSalon(t, repo, owner.ID, "Riyadh")

	created, err := svc.Salon.CreateService(ctx, &request.CreateServiceRequest{
		SalonID:  salon.ID,
		NameEn:   "Premium Facial",
		NameAr:   "فيشل فاخر",
		Duration: 90,
		Price:    650,
		Category: "facial",
	})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	price := 700
	updated, err := svc.Salon.UpdateService(ctx, created.ID, &request.UpdateServiceRequest{Price: &price})
	if err != nil {
		t.Fatalf("update service: %v", err)
	}
	if updated.Price != 700 || updated.Duration != 90 {
		t.Errorf("expected only price patched, got %+v", updated)
	}

	listed, err := svc.Salon.GetServicesBySalon(ctx, salon.ID)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 service, got %d", len(listed))
	}

	if err := svc.Salon.DeleteService(ctx, created.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}

	listed, err = svc.Salon.GetServicesBySalon(ctx, salon.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected empty catalog, got %d", len(listed))
	}

	if err := svc.Salon.DeleteService(ctx, created.ID); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found on second delete, got %v", err)
	}

	_, err = svc.Salon.CreateService(ctx, &request.CreateServiceRequest{
		SalonID:  999,
		NameEn:   "Ghost Service",
		NameAr:   "خدمة",
		Duration: 30,
		Price:    100,
		Category: "misc",
	})
	if err == nil || !strings.Contains(err.Error(), "salon 999 not found") {
		t.Errorf("expected unknown salon error, got %v", err)
	}
}
