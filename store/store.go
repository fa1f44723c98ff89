// Package store implements ownership scoped persistence for users, settings,
// categories and flashcards on top of gorm.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flasheng-api/auth"
)

// Actor is the identity a store operation runs on behalf of.
type Actor struct {
	UserID  string
	IsAdmin bool
}

func ActorFromClaims(c *auth.Claims) Actor {
	return Actor{UserID: c.UserID, IsAdmin: c.IsAdmin()}
}

// Store groups the per entity stores over one database handle.
type Store struct {
	db *gorm.DB

	Users      *UserStore
	Settings   *SettingsStore
	Categories *CategoryStore
	Flashcards *FlashcardStore
}

func New(db *gorm.DB) *Store {
	categories := &CategoryStore{db: db}
	return &Store{
		db:         db,
		Users:      &UserStore{db: db},
		Settings:   &SettingsStore{db: db},
		Categories: categories,
		Flashcards: &FlashcardStore{db: db, categories: categories},
	}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
