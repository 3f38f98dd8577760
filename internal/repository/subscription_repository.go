package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homefeed-server/internal/domain"
)

type SubscriptionRepository interface {
	// Create stores subData unless an identical registration exists. It
	// reports whether a new row was written.
	Create(ctx context.Context, subData string) (bool, error)
	List(ctx context.Context) ([]*domain.Subscription, error)
	Delete(ctx context.Context, id int64) error
}

type subscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, subData string) (bool, error) {
	var created bool
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM subscriptions WHERE sub_data = ?`, subData).Scan(&id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check subscription: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subscriptions (sub_data) VALUES (?)`, subData); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		created = true
		return nil
	})
	return created, err
}

func (r *subscriptionRepository) List(ctx context.Context) ([]*domain.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, sub_data FROM subscriptions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []*domain.Subscription{}
	for rows.Next() {
		var sub domain.Subscription
		if err := rows.Scan(&sub.ID, &sub.SubData); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
