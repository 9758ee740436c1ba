package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"glamhaven/internal/dto/request"
)

func bookingReq(userID, salonID, serviceID int) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		UserID:    userID,
		SalonID:   salonID,
		ServiceID: serviceID,
		Datetime:  time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateBookingAccruesPoints(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")
	salon := seedSalon(t, repo, user.ID, "Riyadh")

	booking, err := svc.Booking.CreateBooking(ctx, bookingReq(user.ID, salon.ID, 7))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if booking.Status != "pending" {
		t.Errorf("expected default status pending, got %q", booking.Status)
	}
	if booking.PointsEarned == nil || *booking.PointsEarned != 70 {
		t.Errorf("expected 70 points for service 7, got %v", booking.PointsEarned)
	}

	stored, err := repo.User.FindByID(ctx, user.ID)
	if err != nil || stored == nil {
		t.Fatalf("reload user: (%v, %v)", stored, err)
	}
	if stored.LoyaltyPoints != 70 {
		t.Errorf("expected user balance 70, got %d", stored.LoyaltyPoints)
	}

	// Service ids divisible by ten earn nothing.
	zero, err := svc.Booking.CreateBooking(ctx, bookingReq(user.ID, salon.ID, 10))
	if err != nil {
		t.Fatalf("create second booking: %v", err)
	}
	if zero.PointsEarned == nil || *zero.PointsEarned != 0 {
		t.Errorf("expected 0 points for service 10, got %v", zero.PointsEarned)
	}

	stored, _ = repo.User.FindByID(ctx, user.ID)
	if stored.LoyaltyPoints != 70 {
		t.Errorf("expected balance unchanged at 70, got %d", stored.LoyaltyPoints)
	}
}

func TestCreateBookingAllowsOverlappingSlots(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")
	salon := seedSalon(t, repo, user.ID, "Riyadh")

	req := bookingReq(user.ID, salon.ID, 3)
	if _, err := svc.Booking.CreateBooking(ctx, req); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// The same slot books again; there is no overlap prevention.
	if _, err := svc.Booking.CreateBooking(ctx, req); err != nil {
		t.Fatalf("second booking for same slot: %v", err)
	}

	bookings, err := svc.Booking.GetSalonBookings(ctx, salon.ID)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")
	salon := seedSalon(t, repo, user.ID, "Riyadh")

	req := bookingReq(user.ID, salon.ID, 1)
	req.Datetime = "tomorrow at noon"
	if _, err := svc.Booking.CreateBooking(ctx, req); err == nil || !strings.Contains(err.Error(), "invalid datetime") {
		t.Errorf("expected invalid datetime error, got %v", err)
	}

	if _, err := svc.Booking.CreateBooking(ctx, bookingReq(999, salon.ID, 1)); err == nil || !strings.Contains(err.Error(), "user 999 not found") {
		t.Errorf("expected unknown user error, got %v", err)
	}

	if _, err := svc.Booking.CreateBooking(ctx, bookingReq(user.ID, 999, 1)); err == nil || !strings.Contains(err.Error(), "salon 999 not found") {
		t.Errorf("expected unknown salon error, got %v", err)
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")
	salon := seedSalon(t, repo, user.ID, "Riyadh")

	booking, err := svc.Booking.CreateBooking(ctx, bookingReq(user.ID, salon.ID, 1))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	updated, err := svc.Booking.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != "confirmed" {
		t.Errorf("expected confirmed, got %q", updated.Status)
	}

	// Completed can move back to pending; transitions are unrestricted.
	updated, err = svc.Booking.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "completed"})
	if err != nil || updated.Status != "completed" {
		t.Fatalf("move to completed: (%v, %v)", updated, err)
	}
	updated, err = svc.Booking.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "pending"})
	if err != nil || updated.Status != "pending" {
		t.Fatalf("move back to pending: (%v, %v)", updated, err)
	}
}

func TestUpdateBookingStatusRejectsUnknownValues(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")
	salon := seedSalon(t, repo, user.ID, "Riyadh")

	booking, err := svc.Booking.CreateBooking(ctx, bookingReq(user.ID, salon.ID, 1))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	_, err = svc.Booking.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "archived"})
	if err == nil {
		t.Fatal("expected rejection of unknown status")
	}

	stored, _ := repo.Booking.FindByID(ctx, booking.ID)
	if stored == nil || string(stored.Status) != "pending" {
		t.Errorf("expected stored status untouched, got %v", stored)
	}

	_, err = svc.Booking.UpdateBookingStatus(ctx, 999, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	if err == nil || !strings.Contains(err.Error(), "booking 999 not found") {
		t.Errorf("expected unknown booking error, got %v", err)
	}
}

func TestGetUserBookings(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	amal := seedUser(t, repo, "amal")
	noor := seedUser(t, repo, "noor")
	salon := seedSalon(t, repo, amal.ID, "Riyadh")

	if _, err := svc.Booking.CreateBooking(ctx, bookingReq(amal.ID, salon.ID, 1)); err != nil {
		t.Fatalf("booking for amal: %v", err)
	}
	if _, err := svc.Booking.CreateBooking(ctx, bookingReq(noor.ID, salon.ID, 2)); err != nil {
		t.Fatalf("booking for noor: %v", err)
	}

	mine, err := svc.Booking.GetUserBookings(ctx, amal.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != amal.ID {
		t.Errorf("expected exactly amal's booking, got %+v", mine)
	}
}
