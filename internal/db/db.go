package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryDSN names a private in-memory database. It lives as long as its
// connection does, which Open pins to exactly one.
const MemoryDSN = ":memory:"

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open opens a SQLite database and configures pragmas.
//
// The pool is limited to a single connection that is never recycled: every
// new connection to ":memory:" would see an empty database of its own. The
// single connection also serializes all access to the collection.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return db, nil
}

// OpenMemory opens a fresh in-memory database with the schema applied.
func OpenMemory() (*sqlx.DB, error) {
	db, err := Open(MemoryDSN)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
