package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO orders (id, event_id, user_id, total_cents, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, query, o.ID, o.EventID, o.UserID,
		o.TotalCents, o.Status, o.CreatedAt, o.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (order_id, tier, quantity, unit_price_cents)
				  VALUES ($1, $2, $3, $4)`
	for _, it := range o.Items {
		if _, err = tx.ExecContext(ctx, itemQuery, o.ID, it.Tier, it.Quantity, it.UnitPriceCents); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, event_id, user_id, total_cents, status, created_at, updated_at
			  FROM orders
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var o domain.Order
	if err = row.Scan(
		&o.ID, &o.EventID, &o.UserID, &o.TotalCents,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	items, err := r.itemsFor(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]

	return &o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	query := `SELECT id, event_id, user_id, total_cents, status, created_at, updated_at
			  FROM orders
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	var ids []string
	for rows.Next() {
		var o domain.Order
		if err = rows.Scan(
			&o.ID, &o.EventID, &o.UserID, &o.TotalCents,
			&o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, &o)
		ids = append(ids, o.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range res {
		o.Items = items[o.ID]
	}

	return res, nil
}

// MarkPaid transitions pending to paid exactly once. Zero rows affected
// means the order is missing or no longer pending.
func (r *OrderRepository) MarkPaid(ctx context.Context, id string) error {
	query := `UPDATE orders
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.OrderStatusPaid, domain.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		row, qErr := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM orders WHERE id = $1`, id)
		if qErr != nil {
			return fmt.Errorf("diagnose order: %w", qErr)
		}
		if scanErr := row.Scan(&status); scanErr != nil {
			return domain.ErrOrderNotFound
		}
		return domain.ErrOrderNotPending
	}

	return nil
}

func (r *OrderRepository) ExpireOverdue(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	query := `UPDATE orders
			  SET status = $1, updated_at = now()
			  WHERE status = $2 AND created_at + make_interval(secs => $3) < now()
			  RETURNING id, event_id, user_id, total_cents, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.OrderStatusExpired, domain.OrderStatusPending, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	var ids []string
	for rows.Next() {
		var o domain.Order
		if err = rows.Scan(
			&o.ID, &o.EventID, &o.UserID, &o.TotalCents,
			&o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expired order: %w", err)
		}
		res = append(res, &o)
		ids = append(ids, o.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range res {
		o.Items = items[o.ID]
	}

	return res, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	res := make(map[string][]domain.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return res, nil
	}

	query := `SELECT order_id, tier, quantity, unit_price_cents
			  FROM order_items
			  WHERE order_id = ANY($1)
			  ORDER BY order_id, tier`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var it domain.OrderItem
		if err = rows.Scan(&orderID, &it.Tier, &it.Quantity, &it.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		res[orderID] = append(res[orderID], it)
	}

	return res, rows.Err()
}
