package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the full database schema.
//
// AUTOINCREMENT keeps item ids strictly increasing even after the highest
// id has been deleted. Message ids are scoped to their item.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    type        TEXT NOT NULL CHECK (type IN ('lost', 'found')),
    name        TEXT NOT NULL,
    category    TEXT NOT NULL,
    description TEXT NOT NULL,
    location    TEXT NOT NULL,
    poster      TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'unclaimed' CHECK (status IN ('unclaimed', 'claimed')),
    photo       TEXT,
    photo_file  TEXT NOT NULL DEFAULT '',
    created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);

CREATE TABLE IF NOT EXISTS messages (
    item_id    INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    id         INTEGER NOT NULL,
    sender     TEXT NOT NULL,
    text       TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    PRIMARY KEY (item_id, id)
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
