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

type ProductRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProductRepo(db *dbpg.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, event_id, name, description, price_cents, category, stock, sold, sizes, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10)`
	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.Name, p.Description, p.PriceCents,
		p.Category, p.Stock, pq.Array(p.Sizes), p.Active, p.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

const productColumns = `id, event_id, name, description, price_cents, category, stock, sold, sizes, active, created_at`

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE active ORDER BY created_at DESC`)
}

func (r *ProductRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE active AND event_id = $1 ORDER BY created_at DESC`,
		eventID)
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var res []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanProduct(scan func(dest ...interface{}) error) (*domain.Product, error) {
	var p domain.Product
	if err := scan(
		&p.ID, &p.EventID, &p.Name, &p.Description, &p.PriceCents,
		&p.Category, &p.Stock, &p.Sold, pq.Array(&p.Sizes), &p.Active, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Stats(ctx context.Context) (*domain.MerchStats, error) {
	query := `SELECT COUNT(*) FILTER (WHERE active),
					 COALESCE(SUM(sold), 0),
					 COALESCE(SUM(sold * price_cents), 0)
			  FROM products`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("merch stats: %w", err)
	}

	var s domain.MerchStats
	if err = row.Scan(&s.TotalProducts, &s.UnitsSold, &s.RevenueCents); err != nil {
		return nil, fmt.Errorf("scan merch stats: %w", err)
	}

	return &s, nil
}

// ReserveStock decrements stock and moves the sold counter for every
// requested product inside one transaction, all-or-nothing. Stock is one
// pool per product regardless of size.
func (r *ProductRepository) ReserveStock(ctx context.Context, requests []domain.StockRequest) ([]domain.ReservedStock, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE products
			  SET stock = stock - $2, sold = sold + $2
			  WHERE id = $1 AND active AND stock >= $2
			  RETURNING name, price_cents`

	reserved := make([]domain.ReservedStock, 0, len(requests))
	for _, req := range requests {
		var name string
		var price int64
		err = tx.QueryRowContext(ctx, query, req.ProductID, req.Quantity).Scan(&name, &price)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, r.diagnoseReserve(ctx, tx, req.ProductID)
			}
			return nil, fmt.Errorf("reserve product %s: %w", req.ProductID, err)
		}
		reserved = append(reserved, domain.ReservedStock{
			ProductID:      req.ProductID,
			Name:           name,
			Quantity:       req.Quantity,
			UnitPriceCents: price,
			Size:           req.Size,
		})
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit stock reserve: %w", err)
	}

	return reserved, nil
}

func (r *ProductRepository) diagnoseReserve(ctx context.Context, tx *sql.Tx, productID string) error {
	var name string
	err := tx.QueryRowContext(ctx,
		`SELECT name FROM products WHERE id = $1 AND active`, productID,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
		}
		return fmt.Errorf("diagnose product %s: %w", productID, err)
	}
	return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, name)
}

func (r *ProductRepository) ReleaseStock(ctx context.Context, items []domain.ReservedStock) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE products
			  SET stock = stock + $2, sold = sold - $2
			  WHERE id = $1`
	for _, it := range items {
		if _, err = tx.ExecContext(ctx, query, it.ProductID, it.Quantity); err != nil {
			return fmt.Errorf("release product %s: %w", it.ProductID, err)
		}
	}

	return tx.Commit()
}

type MerchOrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMerchOrderRepo(db *dbpg.DB) *MerchOrderRepository {
	return &MerchOrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MerchOrderRepository) Create(ctx context.Context, o *domain.MerchOrder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO merch_orders (id, event_id, user_id, total_cents, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, query, o.ID, o.EventID, o.UserID,
		o.TotalCents, o.Status, o.CreatedAt, o.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert merch order: %w", err)
	}

	itemQuery := `INSERT INTO merch_order_items (order_id, product_id, name, quantity, unit_price_cents, size)
				  VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range o.Items {
		if _, err = tx.ExecContext(
			ctx, itemQuery, o.ID, it.ProductID, it.Name, it.Quantity, it.UnitPriceCents, it.Size,
		); err != nil {
			return fmt.Errorf("insert merch order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *MerchOrderRepository) GetByID(ctx context.Context, id string) (*domain.MerchOrder, error) {
	query := `SELECT id, event_id, user_id, total_cents, status, created_at, updated_at
			  FROM merch_orders
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get merch order: %w", err)
	}

	var o domain.MerchOrder
	if err = row.Scan(
		&o.ID, &o.EventID, &o.UserID, &o.TotalCents,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMerchOrderNotFound
		}
		return nil, fmt.Errorf("scan merch order: %w", err)
	}

	items, err := r.itemsFor(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]

	return &o, nil
}

func (r *MerchOrderRepository) MarkPaid(ctx context.Context, id string) error {
	query := `UPDATE merch_orders
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.OrderStatusPaid, domain.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("mark merch order paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("merch order rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		row, qErr := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM merch_orders WHERE id = $1`, id)
		if qErr != nil {
			return fmt.Errorf("diagnose merch order: %w", qErr)
		}
		if scanErr := row.Scan(&status); scanErr != nil {
			return domain.ErrMerchOrderNotFound
		}
		return domain.ErrOrderNotPending
	}

	return nil
}

func (r *MerchOrderRepository) ExpireOverdue(ctx context.Context, olderThan time.Duration) ([]*domain.MerchOrder, error) {
	query := `UPDATE merch_orders
			  SET status = $1, updated_at = now()
			  WHERE status = $2 AND created_at + make_interval(secs => $3) < now()
			  RETURNING id, event_id, user_id, total_cents, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.OrderStatusExpired, domain.OrderStatusPending, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue merch orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.MerchOrder
	var ids []string
	for rows.Next() {
		var o domain.MerchOrder
		if err = rows.Scan(
			&o.ID, &o.EventID, &o.UserID, &o.TotalCents,
			&o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expired merch order: %w", err)
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

func (r *MerchOrderRepository) itemsFor(ctx context.Context, orderIDs []string) (map[string][]domain.MerchOrderItem, error) {
	res := make(map[string][]domain.MerchOrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return res, nil
	}

	query := `SELECT order_id, product_id, name, quantity, unit_price_cents, size
			  FROM merch_order_items
			  WHERE order_id = ANY($1)
			  ORDER BY order_id, product_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("list merch order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var it domain.MerchOrderItem
		if err = rows.Scan(&orderID, &it.ProductID, &it.Name, &it.Quantity, &it.UnitPriceCents, &it.Size); err != nil {
			return nil, fmt.Errorf("scan merch order item: %w", err)
		}
		res[orderID] = append(res[orderID], it)
	}

	return res, rows.Err()
}
