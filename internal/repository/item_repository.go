package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homefeed-server/internal/domain"
)

type ItemRepository interface {
	List(ctx context.Context) ([]*domain.Item, error)
	FindByRef(ctx context.Context, itemType domain.ItemType, refID int64) (*domain.Item, error)
}

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, ref_id, title, preview, color, updated_at, reminder_count
		 FROM items ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []*domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) FindByRef(ctx context.Context, itemType domain.ItemType, refID int64) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, type, ref_id, title, preview, color, updated_at, reminder_count
		 FROM items WHERE type = ? AND ref_id = ?`, itemType, refID)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(s rowScanner) (*domain.Item, error) {
	var (
		item          domain.Item
		itemType      string
		updatedAt     string
		reminderCount sql.NullInt64
	)

	if err := s.Scan(&item.ID, &itemType, &item.RefID, &item.Title, &item.Preview,
		&item.Color, &updatedAt, &reminderCount); err != nil {
		return nil, err
	}

	t, err := parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	item.Type = domain.ItemType(itemType)
	item.UpdatedAt = t
	item.ReminderCount = int(reminderCount.Int64)
	return &item, nil
}

// The helpers below run inside the owning entity's transaction so that an
// entity row and its feed row never disagree.

func insertItem(ctx context.Context, tx *sql.Tx, item *domain.Item) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO items (type, ref_id, title, preview, color, updated_at, reminder_count)
		 VALUES (?, ?, ?, ?, ?, ?, 0)`,
		item.Type, item.RefID, item.Title, item.Preview, item.Color, formatTime(item.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	item.ID = id
	item.ReminderCount = 0
	return nil
}

// syncItem rewrites the derived columns of an existing feed row. A missing
// row is recreated so the index heals itself instead of drifting.
func syncItem(ctx context.Context, tx *sql.Tx, item *domain.Item) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO items (type, ref_id, title, preview, color, updated_at, reminder_count)
		 VALUES (?, ?, ?, ?, ?, ?, 0)
		 ON CONFLICT(type, ref_id) DO UPDATE SET
			title = excluded.title,
			preview = excluded.preview,
			updated_at = excluded.updated_at`,
		item.Type, item.RefID, item.Title, item.Preview, item.Color, formatTime(item.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func deleteItem(ctx context.Context, tx *sql.Tx, itemType domain.ItemType, refID int64) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM items WHERE type = ? AND ref_id = ?`, itemType, refID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// refreshReminderCount sets a note's feed row to its number of pending reminders.
func refreshReminderCount(ctx context.Context, tx *sql.Tx, noteID int64) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE items SET reminder_count = (
			SELECT COUNT(*) FROM reminders WHERE note_id = ? AND is_sent = 0
		 ) WHERE type = ? AND ref_id = ?`,
		noteID, domain.ItemTypeNote, noteID)
	if err != nil {
		return fmt.Errorf("failed to refresh reminder count: %w", err)
	}
	return nil
}
