package ports

import (
	"context"

	"github.com/nextswitchio/guestly/internal/domain"
)

// InventoryLedger is the slice of the inventory service the order services
// are allowed to touch. Tier capacity is mutated through it only.
type InventoryLedger interface {
	Reserve(ctx context.Context, eventID string, requests []domain.ReserveRequest) ([]domain.ReservedItem, error)
	Release(ctx context.Context, eventID string, items []domain.ReservedItem) error
}

// WalletLedger is the slice of the wallet service used for settlement.
type WalletLedger interface {
	Credit(ctx context.Context, userID string, amountCents int64, description string) (int64, error)
	Debit(ctx context.Context, userID string, amountCents int64, description string) (int64, error)
}

// StockLedger mirrors InventoryLedger for per-product merchandise stock.
type StockLedger interface {
	ReserveStock(ctx context.Context, requests []domain.StockRequest) ([]domain.ReservedStock, error)
	ReleaseStock(ctx context.Context, items []domain.ReservedStock) error
}
