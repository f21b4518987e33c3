package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

type accountStorage struct {
	store  *Store
	logger *common.Logger
}

// NewAccountStorage creates an AccountStore backed by BadgerHold.
func NewAccountStorage(store *Store, logger *common.Logger) *accountStorage {
	return &accountStorage{store: store, logger: logger}
}

func (s *accountStorage) Create(_ context.Context, account *models.Account) error {
	if err := s.store.db.Insert(account.ID, account); err != nil {
		if err == badgerhold.ErrUniqueExists {
			return interfaces.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	s.logger.Debug().Str("username", account.Username).Msg("Account created")
	return nil
}

func (s *accountStorage) GetByID(_ context.Context, id string) (*models.Account, error) {
	var account models.Account
	err := s.store.db.Get(id, &account)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, interfaces.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account '%s': %w", id, err)
	}
	return &account, nil
}

func (s *accountStorage) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	var account models.Account
	err := s.store.db.FindOne(&account, badgerhold.Where("Username").Eq(username))
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, interfaces.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account '%s': %w", username, err)
	}
	return &account, nil
}

func (s *accountStorage) TouchLastLogin(ctx context.Context, id string) error {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	account.LastLogin = time.Now().UTC()
	if err := s.store.db.Update(id, account); err != nil {
		return fmt.Errorf("failed to update last login for '%s': %w", id, err)
	}
	return nil
}

func (s *accountStorage) Delete(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.Account{})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return interfaces.ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account '%s': %w", id, err)
	}
	s.logger.Debug().Str("account_id", id).Msg("Account deleted")
	return nil
}

func (s *accountStorage) List(_ context.Context) ([]*models.Account, error) {
	var accounts []models.Account
	if err := s.store.db.Find(&accounts, nil); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	result := make([]*models.Account, len(accounts))
	for i := range accounts {
		result[i] = &accounts[i]
	}
	return result, nil
}
