package common

import (
	"context"
	"testing"
)

func TestUserContext_RoundTrip(t *testing.T) {
	ctx := context.Background()

	// Absent by default
	if uc := UserContextFromContext(ctx); uc != nil {
		t.Error("Expected nil UserContext from empty context")
	}

	// Store and retrieve
	uc := &UserContext{
		UserID:   "user-123",
		Username: "demo",
	}
	ctx = WithUserContext(ctx, uc)

	got := UserContextFromContext(ctx)
	if got == nil {
		t.Fatal("Expected non-nil UserContext")
	}
	if got.UserID != "user-123" {
		t.Errorf("Expected user-123, got %s", got.UserID)
	}
	if got.Username != "demo" {
		t.Errorf("Expected demo, got %s", got.Username)
	}
}

func TestResolveUserID_Anonymous(t *testing.T) {
	ctx := context.Background()

	if id := ResolveUserID(ctx); id != "" {
		t.Errorf("Expected empty user ID for anonymous context, got %q", id)
	}
}

func TestResolveUserID_Authenticated(t *testing.T) {
	ctx := WithUserContext(context.Background(), &UserContext{UserID: "acct-1"})

	if id := ResolveUserID(ctx); id != "acct-1" {
		t.Errorf("Expected acct-1, got %q", id)
	}
}
