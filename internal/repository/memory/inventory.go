// Package memory implements the repository ports on process-local state.
// It is the storage engine used by tests and local development; the
// concurrency contracts (per-event and per-user serialization) match the
// PostgreSQL engine's row locking.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/nextswitchio/guestly/internal/domain"
)

type eventTiers struct {
	mu    sync.Mutex
	order []string
	tiers map[string]*domain.TicketTier
}

type InventoryRepository struct {
	mu     sync.RWMutex
	events map[string]*eventTiers
}

func NewInventoryRepo() *InventoryRepository {
	return &InventoryRepository{
		events: make(map[string]*eventTiers),
	}
}

func (r *InventoryRepository) Seed(_ context.Context, eventID string, tiers []domain.SeedTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[eventID]; ok {
		return nil
	}

	et := &eventTiers{tiers: make(map[string]*domain.TicketTier, len(tiers))}
	for _, t := range tiers {
		if _, ok := et.tiers[t.Name]; ok {
			continue
		}
		et.tiers[t.Name] = &domain.TicketTier{
			EventID:    eventID,
			Name:       t.Name,
			PriceCents: t.PriceCents,
			Available:  t.Capacity,
		}
		et.order = append(et.order, t.Name)
	}
	r.events[eventID] = et

	return nil
}

func (r *InventoryRepository) event(eventID string) (*eventTiers, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	et, ok := r.events[eventID]
	return et, ok
}

func (r *InventoryRepository) GetAvailability(_ context.Context, eventID string) (*domain.TicketAvailability, error) {
	et, ok := r.event(eventID)
	if !ok {
		return nil, domain.ErrEventNotSeeded
	}

	et.mu.Lock()
	defer et.mu.Unlock()

	res := &domain.TicketAvailability{EventID: eventID, Tiers: make([]domain.TicketTier, 0, len(et.order))}
	for _, name := range et.order {
		res.Tiers = append(res.Tiers, *et.tiers[name])
	}

	return res, nil
}

// Reserve holds the event lock across the whole batch: the availability
// check and the decrement are one critical section, and a failed tier
// leaves every counter untouched.
func (r *InventoryRepository) Reserve(_ context.Context, eventID string, requests []domain.ReserveRequest) ([]domain.ReservedItem, error) {
	et, ok := r.event(eventID)
	if !ok {
		return nil, domain.ErrEventNotSeeded
	}

	et.mu.Lock()
	defer et.mu.Unlock()

	for _, req := range requests {
		t, ok := et.tiers[req.Tier]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrTierNotFound, req.Tier)
		}
		if t.Available < req.Quantity {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientAvailability, req.Tier)
		}
	}

	reserved := make([]domain.ReservedItem, 0, len(requests))
	for _, req := range requests {
		t := et.tiers[req.Tier]
		t.Available -= req.Quantity
		reserved = append(reserved, domain.ReservedItem{
			Tier:           req.Tier,
			Quantity:       req.Quantity,
			UnitPriceCents: t.PriceCents,
		})
	}

	return reserved, nil
}

func (r *InventoryRepository) Release(_ context.Context, eventID string, items []domain.ReservedItem) error {
	et, ok := r.event(eventID)
	if !ok {
		return domain.ErrEventNotSeeded
	}

	et.mu.Lock()
	defer et.mu.Unlock()

	for _, it := range items {
		if t, ok := et.tiers[it.Tier]; ok {
			t.Available += it.Quantity
		}
	}

	return nil
}
