package service

import (
	"context"
	"testing"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_Seed(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, newTestLogger(t))

	tiers := []domain.SeedTier{
		{Name: "General", PriceCents: 5000, Capacity: 100},
		{Name: "VIP", PriceCents: 12000, Capacity: 10},
	}

	repo.EXPECT().Seed(mock.Anything, "e1", tiers).Return(nil)

	err := svc.Seed(context.Background(), "e1", tiers)

	require.NoError(t, err)
}

func TestInventoryService_Seed_Validation(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, newTestLogger(t))

	cases := []struct {
		name    string
		eventID string
		tiers   []domain.SeedTier
	}{
		{"empty event id", "", []domain.SeedTier{{Name: "General", PriceCents: 100, Capacity: 1}}},
		{"no tiers", "e1", nil},
		{"empty tier name", "e1", []domain.SeedTier{{Name: "", PriceCents: 100, Capacity: 1}}},
		{"negative price", "e1", []domain.SeedTier{{Name: "General", PriceCents: -1, Capacity: 1}}},
		{"zero capacity", "e1", []domain.SeedTier{{Name: "General", PriceCents: 100, Capacity: 0}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Seed(context.Background(), tc.eventID, tc.tiers)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestInventoryService_Reserve_InvalidQuantity(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, newTestLogger(t))

	_, err := svc.Reserve(context.Background(), "e1", []domain.ReserveRequest{
		{Tier: "General", Quantity: -1},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventoryService_Reserve_PassesThroughRepoError(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, newTestLogger(t))

	requests := []domain.ReserveRequest{{Tier: "Ghost", Quantity: 1}}
	repo.EXPECT().Reserve(mock.Anything, "e1", requests).Return(nil, domain.ErrTierNotFound)

	_, err := svc.Reserve(context.Background(), "e1", requests)

	assert.ErrorIs(t, err, domain.ErrTierNotFound)
}

func TestInventoryService_Release_EmptyIsNoOp(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, newTestLogger(t))

	err := svc.Release(context.Background(), "e1", nil)

	require.NoError(t, err)
}

func TestInventoryService_GetAvailability(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, newTestLogger(t))

	availability := &domain.TicketAvailability{
		EventID: "e1",
		Tiers: []domain.TicketTier{
			{EventID: "e1", Name: "General", PriceCents: 5000, Available: 42},
		},
	}
	repo.EXPECT().GetAvailability(mock.Anything, "e1").Return(availability, nil)

	got, err := svc.GetAvailability(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, availability, got)
}
