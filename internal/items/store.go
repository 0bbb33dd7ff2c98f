// Package items persists the timestamp records the project template ships
// with. Nothing user-visible reads them; the store exists so the scaffolding
// keeps working end to end.
package items

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	liltErrors "github.com/lilt-audio/lilt/internal/errors"
)

// Item is a persisted timestamp record.
type Item struct {
	ID        string
	CreatedAt time.Time
}

// Store is a SQLite-backed item store.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default database location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "lilt", "items.db"), nil
}

// Open creates a connection and runs the schema migration.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return store, nil
}

// Close ensures the DB connection is closed gracefully.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores a new item with the given timestamp and returns it.
func (s *Store) Insert(ctx context.Context, t time.Time) (Item, error) {
	item := Item{
		ID:        uuid.NewString(),
		CreatedAt: t.UTC(),
	}

	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO items (id, created_at) VALUES (?, ?)",
		item.ID, item.CreatedAt,
	); err != nil {
		return Item{}, fmt.Errorf("failed to insert item: %w", err)
	}

	return item, nil
}

// All returns every stored item ordered by creation time, then id.
func (s *Store) All(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at FROM items ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// DeleteAt removes the item at the given offset into the All ordering.
func (s *Store) DeleteAt(ctx context.Context, index int) error {
	if index < 0 {
		return liltErrors.ErrNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net: auto-rollback if we error before commit

	row := tx.QueryRowContext(ctx,
		"SELECT id FROM items ORDER BY created_at ASC, id ASC LIMIT 1 OFFSET ?", index)

	var id string
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return liltErrors.ErrNotFound
		}
		return fmt.Errorf("failed to resolve item offset: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}

	return nil
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_items_created_at ON items(created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return err
	}

	return nil
}
