package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Dates are stored as zero-padded
// YYYY-MM-DD strings so lexicographic comparison matches chronological order.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    username    TEXT NOT NULL,
    date_added  TEXT NOT NULL,
    expiry_date TEXT NOT NULL,
    fridge      TEXT NOT NULL,
    image_path  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_username ON items(username);
CREATE INDEX IF NOT EXISTS idx_items_expiry_date ON items(expiry_date);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
