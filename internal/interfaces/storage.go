// Package interfaces defines service contracts for Advisor
package interfaces

import (
	"context"
	"errors"

	"github.com/bobmcallan/advisor/internal/models"
)

// Sentinel errors returned by stores.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrSessionNotFound   = errors.New("session not found")
)

// StorageManager coordinates the storage backends
type StorageManager interface {
	// Storage accessors
	Accounts() AccountStore
	Sessions() SessionStore

	// DataPath returns the base data directory path.
	DataPath() string

	// Lifecycle
	Close() error
}

// AccountStore manages registered accounts.
type AccountStore interface {
	// Create inserts a new account. A taken username fails with
	// ErrDuplicateUsername.
	Create(ctx context.Context, account *models.Account) error

	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)

	// TouchLastLogin records a successful authentication.
	TouchLastLogin(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Account, error)
}

// SessionStore manages saved advice sessions. Sessions are append-only.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)

	// ListByUser returns a user's sessions newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Session, error)

	// Latest returns a user's most recent session, or ErrSessionNotFound
	// when the user has none.
	Latest(ctx context.Context, userID string) (*models.Session, error)

	Delete(ctx context.Context, id string) error
}
