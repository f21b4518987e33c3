package badger

import (
	"context"
	"fmt"
	"sort"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

type sessionStorage struct {
	store  *Store
	logger *common.Logger
}

// NewSessionStorage creates a SessionStore backed by BadgerHold.
func NewSessionStorage(store *Store, logger *common.Logger) *sessionStorage {
	return &sessionStorage{store: store, logger: logger}
}

func (s *sessionStorage) Save(_ context.Context, session *models.Session) error {
	if err := s.store.db.Insert(session.ID, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Debug().
		Str("session_id", session.ID).
		Str("user_id", session.UserID).
		Msg("Session saved")
	return nil
}

func (s *sessionStorage) Get(_ context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := s.store.db.Get(id, &session)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, interfaces.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session '%s': %w", id, err)
	}
	return &session, nil
}

func (s *sessionStorage) ListByUser(_ context.Context, userID string) ([]*models.Session, error) {
	var sessions []models.Session
	if err := s.store.db.Find(&sessions, badgerhold.Where("UserID").Eq(userID)); err != nil {
		return nil, fmt.Errorf("failed to list sessions for '%s': %w", userID, err)
	}

	// Newest first
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	result := make([]*models.Session, len(sessions))
	for i := range sessions {
		result[i] = &sessions[i]
	}
	return result, nil
}

func (s *sessionStorage) Latest(ctx context.Context, userID string) (*models.Session, error) {
	sessions, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, interfaces.ErrSessionNotFound
	}
	return sessions[0], nil
}

func (s *sessionStorage) Delete(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.Session{})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return interfaces.ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session '%s': %w", id, err)
	}
	s.logger.Debug().Str("session_id", id).Msg("Session deleted")
	return nil
}
