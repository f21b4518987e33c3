package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/models"
	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.Storage.Data.Path = filepath.Join(t.TempDir(), "advisor")

	m, err := NewManager(common.NewLogger("error"), cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManager_Accessors(t *testing.T) {
	m := newTestManager(t)

	if m.Accounts() == nil {
		t.Error("Accounts() returned nil")
	}
	if m.Sessions() == nil {
		t.Error("Sessions() returned nil")
	}
	if m.DataPath() == "" {
		t.Error("DataPath() returned empty string")
	}
}

func TestManager_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	account := &models.Account{
		ID:        uuid.New().String(),
		Username:  "roundtrip",
		CreatedAt: time.Now().UTC(),
	}
	if err := m.Accounts().Create(ctx, account); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    account.ID,
		Data:      `{"ok":true}`,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.Sessions().Save(ctx, session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := m.Sessions().Latest(ctx, account.ID)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if got.ID != session.ID {
		t.Errorf("Latest ID = %q, want %q", got.ID, session.ID)
	}
}
