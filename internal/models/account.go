// Package models defines data structures for Advisor
package models

import (
	"encoding/gob"
	"time"
)

func init() {
	gob.Register(Account{})
	gob.Register(Session{})
}

// Account is a registered user of the advisor.
type Account struct {
	ID           string    `json:"id" badgerhold:"key"`
	Username     string    `json:"username" badgerhold:"unique"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}

// Session is one saved advice run belonging to an account. Data holds the
// serialized Bundle exactly as it was at save time; sessions are append-only
// and never updated in place.
type Session struct {
	ID        string    `json:"id" badgerhold:"key"`
	UserID    string    `json:"user_id" badgerhold:"index"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at" badgerhold:"index"`
}
