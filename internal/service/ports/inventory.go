package ports

import (
	"context"

	"github.com/nextswitchio/guestly/internal/domain"
)

type InventoryRepo interface {
	Seed(ctx context.Context, eventID string, tiers []domain.SeedTier) error
	GetAvailability(ctx context.Context, eventID string) (*domain.TicketAvailability, error)
	Reserve(ctx context.Context, eventID string, requests []domain.ReserveRequest) ([]domain.ReservedItem, error)
	Release(ctx context.Context, eventID string, items []domain.ReservedItem) error
}
