package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Seed inserts the tiers of an event only if none exist yet. First seed
// wins; a repeated seed commits nothing.
func (r *InventoryRepository) Seed(ctx context.Context, eventID string, tiers []domain.SeedTier) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ticket_tiers WHERE event_id = $1`, eventID,
	).Scan(&count); err != nil {
		return fmt.Errorf("count tiers: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `INSERT INTO ticket_tiers (event_id, name, price_cents, available, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (event_id, name) DO NOTHING`
	now := time.Now().UTC()
	for _, t := range tiers {
		if _, err = tx.ExecContext(ctx, query, eventID, t.Name, t.PriceCents, t.Capacity, now); err != nil {
			return fmt.Errorf("insert tier %s: %w", t.Name, err)
		}
	}

	return tx.Commit()
}

func (r *InventoryRepository) GetAvailability(ctx context.Context, eventID string) (*domain.TicketAvailability, error) {
	query := `SELECT event_id, name, price_cents, available
			  FROM ticket_tiers
			  WHERE event_id = $1
			  ORDER BY price_cents`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	defer rows.Close()

	var res domain.TicketAvailability
	res.EventID = eventID
	for rows.Next() {
		var t domain.TicketTier
		if err = rows.Scan(&t.EventID, &t.Name, &t.PriceCents, &t.Available); err != nil {
			return nil, fmt.Errorf("scan tier: %w", err)
		}
		res.Tiers = append(res.Tiers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(res.Tiers) == 0 {
		return nil, domain.ErrEventNotSeeded
	}

	return &res, nil
}

// Reserve decrements every requested tier inside one transaction. The
// conditional UPDATE takes the row lock and enforces available >= quantity,
// so concurrent reservations on the same tier serialize and can never
// oversell. Any failed tier rolls the whole batch back.
func (r *InventoryRepository) Reserve(ctx context.Context, eventID string, requests []domain.ReserveRequest) ([]domain.ReservedItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE ticket_tiers
			  SET available = available - $3
			  WHERE event_id = $1 AND name = $2 AND available >= $3
			  RETURNING price_cents`

	reserved := make([]domain.ReservedItem, 0, len(requests))
	for _, req := range requests {
		var price int64
		err = tx.QueryRowContext(ctx, query, eventID, req.Tier, req.Quantity).Scan(&price)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, r.diagnoseReserve(ctx, tx, eventID, req.Tier)
			}
			return nil, fmt.Errorf("reserve tier %s: %w", req.Tier, err)
		}
		reserved = append(reserved, domain.ReservedItem{
			Tier:           req.Tier,
			Quantity:       req.Quantity,
			UnitPriceCents: price,
		})
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reserve: %w", err)
	}

	return reserved, nil
}

// diagnoseReserve names the offending tier: unknown tier vs oversubscribed.
func (r *InventoryRepository) diagnoseReserve(ctx context.Context, tx *sql.Tx, eventID, tier string) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM ticket_tiers WHERE event_id = $1 AND name = $2)`,
		eventID, tier,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("diagnose tier %s: %w", tier, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrTierNotFound, tier)
	}
	return fmt.Errorf("%w: %s", domain.ErrInsufficientAvailability, tier)
}

func (r *InventoryRepository) Release(ctx context.Context, eventID string, items []domain.ReservedItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE ticket_tiers
			  SET available = available + $3
			  WHERE event_id = $1 AND name = $2`
	for _, it := range items {
		if _, err = tx.ExecContext(ctx, query, eventID, it.Tier, it.Quantity); err != nil {
			return fmt.Errorf("release tier %s: %w", it.Tier, err)
		}
	}

	return tx.Commit()
}
