package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homefeed-server/internal/domain"
)

type BudgetRepository interface {
	Create(ctx context.Context, budget *domain.Budget, item *domain.Item) error
	Update(ctx context.Context, budget *domain.Budget, item *domain.Item) error
	FindByID(ctx context.Context, id int64) (*domain.Budget, error)
	Delete(ctx context.Context, id int64) error
}

type budgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *domain.Budget, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO budgets (title, data, updated_at) VALUES (?, ?, ?)`,
			budget.Title, budget.Data, formatTime(budget.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to create budget: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to create budget: %w", err)
		}

		budget.ID = id
		item.RefID = id
		return insertItem(ctx, tx, item)
	})
}

func (r *budgetRepository) Update(ctx context.Context, budget *domain.Budget, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE budgets SET title = ?, data = ?, updated_at = ? WHERE id = ?`,
			budget.Title, budget.Data, formatTime(budget.UpdatedAt), budget.ID)
		if err != nil {
			return fmt.Errorf("failed to update budget: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update budget: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		item.RefID = budget.ID
		return syncItem(ctx, tx, item)
	})
}

func (r *budgetRepository) FindByID(ctx context.Context, id int64) (*domain.Budget, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, data, updated_at FROM budgets WHERE id = ?`, id)

	var (
		budget    domain.Budget
		updatedAt string
	)
	if err := row.Scan(&budget.ID, &budget.Title, &budget.Data, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	t, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	budget.UpdatedAt = t

	return &budget, nil
}

func (r *budgetRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete budget: %w", err)
		}
		return deleteItem(ctx, tx, domain.ItemTypeBudget, id)
	})
}
