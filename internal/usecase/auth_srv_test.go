package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/memory"
	"glamhaven/internal/data/repository"
	"glamhaven/internal/dto/request"
	"glamhaven/internal/usecase"
	"glamhaven/pkg/utils"

	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*usecase.Service, *repository.Repository) {
	t.Helper()

	repo := memory.NewRepository()
	config := &utils.Config{
		Session:   utils.SessionConfig{ExpiryHours: 24},
		RateLimit: utils.RateLimitConfig{RPS: 100, Burst: 100},
	}
	return usecase.NewService(repo, config, zap.NewNop()), repo
}

func registerReq(username, email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: username,
		Password: "secret123",
		Email:    email,
		FullName: "Test User",
	}
}

func TestRegisterDefaultsAndSession(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	auth, err := svc.Auth.Register(ctx, registerReq("amal", "amal@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if auth.User.Role != "customer" {
		t.Errorf("expected default role customer, got %q", auth.User.Role)
	}
	if auth.User.PreferredLanguage != "en" {
		t.Errorf("expected default language en, got %q", auth.User.PreferredLanguage)
	}
	if auth.User.LoyaltyPoints != 0 {
		t.Errorf("expected zero loyalty points, got %d", auth.User.LoyaltyPoints)
	}
	if auth.Token == "" {
		t.Error("expected a session token")
	}
	if !auth.ExpiresAt.After(time.Now().Add(23 * time.Hour)) {
		t.Errorf("expected expiry about 24h out, got %v", auth.ExpiresAt)
	}

	sess, err := repo.Session.FindValidByToken(ctx, auth.Token)
	if err != nil || sess == nil {
		t.Fatalf("expected persisted session, got (%v, %v)", sess, err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Auth.Register(ctx, registerReq("amal", "amal@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Duplicate checks are case-insensitive.
	_, err := svc.Auth.Register(ctx, registerReq("AMAL", "other@example.com"))
	if err == nil || !strings.Contains(err.Error(), "username already exists") {
		t.Errorf("expected username conflict, got %v", err)
	}

	_, err = svc.Auth.Register(ctx, registerReq("noor", "AMAL@example.com"))
	if err == nil || !strings.Contains(err.Error(), "email already exists") {
		t.Errorf("expected email conflict, got %v", err)
	}

	// Failed registrations must not leave partial rows behind.
	if u, _ := repo.User.FindByUsername(ctx, "noor"); u != nil {
		t.Error("conflicting register created a user row")
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Auth.Register(ctx, registerReq("amal", "amal@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	auth, err := svc.Auth.Login(ctx, &request.LoginRequest{Username: "amal", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.Token == "" {
		t.Error("expected a session token")
	}

	// Wrong password and unknown user fail with the same message.
	_, badPass := svc.Auth.Login(ctx, &request.LoginRequest{Username: "amal", Password: "wrongpass"})
	_, badUser := svc.Auth.Login(ctx, &request.LoginRequest{Username: "ghost", Password: "secret123"})

	if badPass == nil || badUser == nil {
		t.Fatal("expected both logins to fail")
	}
	if badPass.Error() != badUser.Error() {
		t.Errorf("expected identical failure messages, got %q and %q", badPass, badUser)
	}
	if !strings.Contains(badPass.Error(), "invalid credentials") {
		t.Errorf("unexpected login error: %v", badPass)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	auth, err := svc.Auth.Register(ctx, registerReq("amal", "amal@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Auth.Logout(ctx, auth.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	sess, err := repo.Session.FindValidByToken(ctx, auth.Token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if sess != nil {
		t.Error("expected session to be revoked")
	}
}

func TestMeReturnsProfileWithoutPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	auth, err := svc.Auth.Register(ctx, registerReq("amal", "amal@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	me, err := svc.Auth.Me(ctx, auth.User.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me.Username != "amal" {
		t.Errorf("expected username amal, got %q", me.Username)
	}

	_, err = svc.Auth.Me(ctx, 999)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found for unknown user, got %v", err)
	}
}

func seedUser(t *testing.T, repo *repository.Repository, username string) *entity.User {
	t.Helper()

	u := &entity.User{
		Username:          username,
		PasswordHash:      "x",
		Email:             username + "@example.com",
		FullName:          "Seed User",
		Role:              entity.RoleCustomer,
		PreferredLanguage: "en",
		CreatedAt:         time.Now(),
	}
	if err := repo.User.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedSalon(t *testing.T, repo *repository.Repository, ownerID int, city string) *entity.Salon {
	t.Helper()

	s := &entity.Salon{
		OwnerID:   ownerID,
		NameEn:    "Seed Salon",
		NameAr:    "صالون",
		Address:   "Somewhere",
		City:      city,
		Phone:     "+966500000000",
		CreatedAt: time.Now(),
	}
	if err := repo.Salon.Create(context.Background(), s); err != nil {
		t.Fatalf("seed salon: %v", err)
	}
	return s
}
