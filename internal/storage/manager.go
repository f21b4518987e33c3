// Package storage provides the top-level StorageManager over the single
// BadgerHold data area holding accounts and saved sessions.
package storage

import (
	"fmt"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/storage/badger"
)

// Manager implements interfaces.StorageManager.
type Manager struct {
	store    *badger.Store
	accounts interfaces.AccountStore
	sessions interfaces.SessionStore
	dataPath string
	logger   *common.Logger
}

// NewManager opens the data store and wires the record stores.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	store, err := badger.NewStore(logger, config.Storage.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create data store: %w", err)
	}

	logger.Info().
		Str("path", config.Storage.Data.Path).
		Msg("Storage manager initialized")

	return &Manager{
		store:    store,
		accounts: badger.NewAccountStorage(store, logger),
		sessions: badger.NewSessionStorage(store, logger),
		dataPath: config.Storage.Data.Path,
		logger:   logger,
	}, nil
}

func (m *Manager) Accounts() interfaces.AccountStore {
	return m.accounts
}

func (m *Manager) Sessions() interfaces.SessionStore {
	return m.sessions
}

func (m *Manager) DataPath() string {
	return m.dataPath
}

func (m *Manager) Close() error {
	return m.store.Close()
}

// Compile-time check
var _ interfaces.StorageManager = (*Manager)(nil)
