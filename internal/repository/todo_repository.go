package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homefeed-server/internal/domain"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo, item *domain.Item) error
	Update(ctx context.Context, todo *domain.Todo, item *domain.Item) error
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type todoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO todos (title, tasks, updated_at) VALUES (?, ?, ?)`,
			todo.Title, todo.Tasks, formatTime(todo.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}

		todo.ID = id
		item.RefID = id
		return insertItem(ctx, tx, item)
	})
}

func (r *todoRepository) Update(ctx context.Context, todo *domain.Todo, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE todos SET title = ?, tasks = ?, updated_at = ? WHERE id = ?`,
			todo.Title, todo.Tasks, formatTime(todo.UpdatedAt), todo.ID)
		if err != nil {
			return fmt.Errorf("failed to update todo: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update todo: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		item.RefID = todo.ID
		return syncItem(ctx, tx, item)
	})
}

func (r *todoRepository) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, tasks, updated_at FROM todos WHERE id = ?`, id)

	var (
		todo      domain.Todo
		updatedAt string
	)
	if err := row.Scan(&todo.ID, &todo.Title, &todo.Tasks, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	t, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	todo.UpdatedAt = t

	return &todo, nil
}

func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete todo: %w", err)
		}
		return deleteItem(ctx, tx, domain.ItemTypeTodo, id)
	})
}
