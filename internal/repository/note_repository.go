package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homefeed-server/internal/domain"
)

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note, item *domain.Item) error
	Update(ctx context.Context, note *domain.Note, item *domain.Item) error
	FindByID(ctx context.Context, id int64) (*domain.Note, error)
	Delete(ctx context.Context, id int64) error
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO notes (title, keywords, content, updated_at) VALUES (?, ?, ?, ?)`,
			note.Title, note.Keywords, note.Content, formatTime(note.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		note.ID = id
		item.RefID = id
		return insertItem(ctx, tx, item)
	})
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE notes SET title = ?, keywords = ?, content = ?, updated_at = ? WHERE id = ?`,
			note.Title, note.Keywords, note.Content, formatTime(note.UpdatedAt), note.ID)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		item.RefID = note.ID
		return syncItem(ctx, tx, item)
	})
}

func (r *noteRepository) FindByID(ctx context.Context, id int64) (*domain.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, keywords, content, updated_at FROM notes WHERE id = ?`, id)

	var (
		note      domain.Note
		updatedAt string
	)
	if err := row.Scan(&note.ID, &note.Title, &note.Keywords, &note.Content, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	t, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	note.UpdatedAt = t

	return &note, nil
}

// Delete removes the note together with its feed row and its reminders.
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reminders WHERE note_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete note reminders: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		return deleteItem(ctx, tx, domain.ItemTypeNote, id)
	})
}
