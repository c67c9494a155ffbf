package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Deblish/fridge-app/internal/model"
)

// CreateItem inserts a new item and returns its assigned ID.
func CreateItem(ctx context.Context, db *sql.DB, item model.Item) (int64, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (username, date_added, expiry_date, fridge, image_path)
		 VALUES (?, ?, ?, ?, ?)`,
		item.Username, item.DateAdded, item.ExpiryDate, item.Fridge, item.ImagePath,
	)
	if err != nil {
		return 0, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting item id: %w", err)
	}

	return id, nil
}

// GetItem returns an item by ID, or nil if it doesn't exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT id, username, date_added, expiry_date, fridge, image_path
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Username, &item.DateAdded, &item.ExpiryDate, &item.Fridge, &item.ImagePath)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all items, oldest first.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, username, date_added, expiry_date, fridge, image_path
		 FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListItemsByUsername returns all items belonging to the exact username.
// The match is case-sensitive.
func ListItemsByUsername(ctx context.Context, db *sql.DB, username string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, username, date_added, expiry_date, fridge, image_path
		 FROM items WHERE username = ? ORDER BY id`, username,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items by username: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListUsernames returns every distinct username that owns at least one item.
func ListUsernames(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT username FROM items ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing usernames: %w", err)
	}
	defer rows.Close()

	return scanUsernames(rows)
}

// SearchUsernames returns the distinct usernames containing the given
// substring. SQLite's LIKE is case-insensitive for ASCII, which gives the
// intended case-insensitive containment match.
func SearchUsernames(ctx context.Context, db *sql.DB, substring string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT username FROM items
		 WHERE username LIKE ? ESCAPE '\' ORDER BY username`,
		"%"+escapeLike(substring)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("searching usernames: %w", err)
	}
	defer rows.Close()

	return scanUsernames(rows)
}

// DeleteItem removes an item row.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Username, &item.DateAdded, &item.ExpiryDate, &item.Fridge, &item.ImagePath); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanUsernames(rows *sql.Rows) ([]string, error) {
	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("scanning username: %w", err)
		}
		usernames = append(usernames, username)
	}
	return usernames, rows.Err()
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
