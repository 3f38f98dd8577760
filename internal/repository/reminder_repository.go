package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"homefeed-server/internal/domain"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	ListPending(ctx context.Context, noteID int64) ([]*domain.Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
	MarkSent(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type reminderRepository struct {
	db *sql.DB
}

func NewReminderRepository(db *sql.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// Create stores a pending reminder for an existing note and bumps the note's
// reminder count in the feed.
func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM notes WHERE id = ?`, reminder.NoteID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check note: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO reminders (note_id, label, remind_at, is_sent) VALUES (?, ?, ?, 0)`,
			reminder.NoteID, reminder.Label, formatTime(reminder.RemindAt))
		if err != nil {
			return fmt.Errorf("failed to create reminder: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to create reminder: %w", err)
		}
		reminder.ID = id
		reminder.IsSent = false

		return refreshReminderCount(ctx, tx, reminder.NoteID)
	})
}

func (r *reminderRepository) ListPending(ctx context.Context, noteID int64) ([]*domain.Reminder, error) {
	return r.query(ctx,
		`SELECT id, note_id, label, remind_at, is_sent FROM reminders
		 WHERE note_id = ? AND is_sent = 0 ORDER BY remind_at ASC, id ASC`, noteID)
}

func (r *reminderRepository) ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	return r.query(ctx,
		`SELECT id, note_id, label, remind_at, is_sent FROM reminders
		 WHERE remind_at <= ? AND is_sent = 0 ORDER BY remind_at ASC, id ASC`, formatTime(now))
}

// MarkSent moves a reminder from pending to sent. It reports false when the
// reminder was already sent or no longer exists; a sent reminder never goes
// back to pending.
func (r *reminderRepository) MarkSent(ctx context.Context, id int64) (bool, error) {
	var changed bool
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var noteID int64
		err := tx.QueryRowContext(ctx,
			`UPDATE reminders SET is_sent = 1 WHERE id = ? AND is_sent = 0 RETURNING note_id`, id).Scan(&noteID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to mark reminder sent: %w", err)
		}

		changed = true
		return refreshReminderCount(ctx, tx, noteID)
	})
	return changed, err
}

// Delete removes a reminder and returns the note it belonged to, or 0 when
// no such reminder exists.
func (r *reminderRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var noteID int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`DELETE FROM reminders WHERE id = ? RETURNING note_id`, id).Scan(&noteID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to delete reminder: %w", err)
		}

		return refreshReminderCount(ctx, tx, noteID)
	})
	if err != nil {
		return 0, err
	}
	return noteID, nil
}

func (r *reminderRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []*domain.Reminder{}
	for rows.Next() {
		var (
			reminder domain.Reminder
			remindAt string
		)
		if err := rows.Scan(&reminder.ID, &reminder.NoteID, &reminder.Label, &remindAt, &reminder.IsSent); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}

		t, err := parseTime(remindAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminder.RemindAt = t

		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}
