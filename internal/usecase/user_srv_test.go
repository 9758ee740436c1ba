package usecase_test

import (
	"context"
	"strings"
	"testing"

	"glamhaven/internal/dto/request"
)

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")

	name := "Amal Updated"
	lang := "ar"
	updated, err := svc.User.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		FullName:          &name,
		PreferredLanguage: &lang,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if updated.FullName != "Amal Updated" || updated.PreferredLanguage != "ar" {
		t.Errorf("expected patched fields applied, got %+v", updated)
	}
	if updated.Username != "amal" {
		t.Errorf("expected username untouched, got %q", updated.Username)
	}

	bad := "fr"
	_, err = svc.User.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{PreferredLanguage: &bad})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected language validation error, got %v", err)
	}

	_, err = svc.User.UpdateProfile(ctx, 999, &request.UpdateProfileRequest{FullName: &name})
	if err == nil || !strings.Contains(err.Error(), "user 999 not found") {
		t.Errorf("expected unknown user error, got %v", err)
	}
}

func TestGetUser(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "amal")

	got, err := svc.User.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.ID != user.ID || got.Username != "amal" {
		t.Errorf("unexpected profile %+v", got)
	}

	_, err = svc.User.GetUser(ctx, 999)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found, got %v", err)
	}
}
