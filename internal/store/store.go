// Package store holds the lost-and-found board: items and their messages.
package store

import (
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/najdeno/internal/uploads"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("item not found")

// ValidationError reports a missing or invalid field. Its message is meant
// for the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// Store is the item repository. All access goes through a single database
// connection, so operations never interleave.
type Store struct {
	db     *sqlx.DB
	photos *uploads.Dir
	now    func() time.Time
}

// New returns a store over db. photos may be nil, in which case uploads are refused.
func New(db *sqlx.DB, photos *uploads.Dir) *Store {
	return &Store{db: db, photos: photos, now: time.Now}
}

// Filter narrows List. Empty fields match everything; set fields are ANDed.
type Filter struct {
	Search   string
	Category string
	Status   string
	Type     string
}
