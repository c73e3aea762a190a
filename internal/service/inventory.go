package service

import (
	"context"
	"fmt"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type InventoryService struct {
	repo   ports.InventoryRepo
	logger logger.Logger
}

func NewInventoryService(repo ports.InventoryRepo, logger logger.Logger) *InventoryService {
	return &InventoryService{
		repo:   repo,
		logger: logger,
	}
}

// Seed records the ticket tiers of an event. First seed wins: re-seeding an
// already seeded event is a no-op, capacity and prices are not refreshed.
func (s *InventoryService) Seed(ctx context.Context, eventID string, tiers []domain.SeedTier) error {
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	if len(tiers) == 0 {
		return fmt.Errorf("%w: at least one tier is required", domain.ErrValidation)
	}
	for _, t := range tiers {
		if t.Name == "" {
			return fmt.Errorf("%w: tier name is required", domain.ErrValidation)
		}
		if t.PriceCents < 0 {
			return fmt.Errorf("%w: tier %s price must not be negative", domain.ErrValidation, t.Name)
		}
		if t.Capacity <= 0 {
			return fmt.Errorf("%w: tier %s capacity must be positive", domain.ErrValidation, t.Name)
		}
	}

	if err := s.repo.Seed(ctx, eventID, tiers); err != nil {
		return fmt.Errorf("seed tiers: %w", err)
	}

	s.logger.Info("ticket tiers seeded",
		logger.String("event_id", eventID),
		logger.Int("tiers", len(tiers)),
	)

	return nil
}

func (s *InventoryService) GetAvailability(ctx context.Context, eventID string) (*domain.TicketAvailability, error) {
	return s.repo.GetAvailability(ctx, eventID)
}

// Reserve atomically decrements availability for every requested tier.
// The batch is all-or-nothing: if any tier is unknown or oversubscribed,
// no inventory is held at all.
func (s *InventoryService) Reserve(ctx context.Context, eventID string, requests []domain.ReserveRequest) ([]domain.ReservedItem, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: nothing to reserve", domain.ErrValidation)
	}
	for _, r := range requests {
		if r.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
		}
	}

	reserved, err := s.repo.Reserve(ctx, eventID, requests)
	if err != nil {
		return nil, err
	}

	return reserved, nil
}

// Release adds quantities back. Pairing with a prior Reserve is the
// caller's responsibility.
func (s *InventoryService) Release(ctx context.Context, eventID string, items []domain.ReservedItem) error {
	if len(items) == 0 {
		return nil
	}

	if err := s.repo.Release(ctx, eventID, items); err != nil {
		return fmt.Errorf("release tickets: %w", err)
	}

	s.logger.Info("tickets released",
		logger.String("event_id", eventID),
		logger.Int("items", len(items)),
	)

	return nil
}
