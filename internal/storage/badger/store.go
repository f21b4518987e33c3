// Package badger provides BadgerHold-based storage for accounts and saved
// advice sessions.
package badger

import (
	"fmt"
	"os"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/timshannon/badgerhold/v4"
)

// Store is the single on-disk BadgerHold database shared by the account
// and session record stores.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore opens the BadgerHold database at dir, creating it if needed.
func NewStore(logger *common.Logger, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create badger directory %s: %w", dir, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = nil // suppress badger's internal logger

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %s: %w", dir, err)
	}

	logger.Debug().Str("path", dir).Msg("BadgerHold store opened")

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database. Safe on a zero Store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
