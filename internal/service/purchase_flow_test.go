package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/repository/memory"
	"github.com/nextswitchio/guestly/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Full purchase flow against the in-memory storage engine: real services,
// real repositories, only the notifier is mocked.
func newPurchaseFlow(t *testing.T) (*InventoryService, *WalletService, *OrderService) {
	log := newTestLogger(t)

	notifier := mocks.NewMockSalesNotifier(t)
	notifier.EXPECT().NotifyOrderPaid(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyOrderExpired(mock.Anything, mock.Anything).Return().Maybe()

	inventory := NewInventoryService(memory.NewInventoryRepo(), log)
	wallet := NewWalletService(memory.NewWalletRepo(), memory.NewSavingsRepo(), log)
	orders := NewOrderService(memory.NewOrderRepo(), inventory, wallet, notifier, 15*time.Minute, log)

	return inventory, wallet, orders
}

func TestPurchaseFlow_SellOutAndSettle(t *testing.T) {
	inventory, wallet, orders := newPurchaseFlow(t)
	ctx := context.Background()

	require.NoError(t, inventory.Seed(ctx, "e1", []domain.SeedTier{
		{Name: "General", PriceCents: 5000, Capacity: 2},
	}))

	// u1 takes the whole tier
	order, err := orders.Create(ctx, "u1", "e1", []domain.ReserveRequest{
		{Tier: "General", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), order.TotalCents)

	// sold out for everyone else
	_, err = orders.Create(ctx, "u2", "e1", []domain.ReserveRequest{
		{Tier: "General", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailability)

	// settle from the wallet
	_, err = wallet.Credit(ctx, "u1", 10000, "Wallet top up")
	require.NoError(t, err)

	paid, err := orders.Pay(ctx, order.ID, domain.PaymentMethodWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, paid.Status)

	w, err := wallet.EnsureWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.BalanceCents)

	// paying again must not charge again
	again, err := orders.Pay(ctx, order.ID, domain.PaymentMethodWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, again.Status)

	w, err = wallet.EnsureWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.BalanceCents)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPurchaseFlow_InsufficientFundsKeepsOrderPayable(t *testing.T) {
	inventory, wallet, orders := newPurchaseFlow(t)
	ctx := context.Background()

	require.NoError(t, inventory.Seed(ctx, "e1", []domain.SeedTier{
		{Name: "General", PriceCents: 5000, Capacity: 5},
	}))

	order, err := orders.Create(ctx, "u1", "e1", []domain.ReserveRequest{
		{Tier: "General", Quantity: 1},
	})
	require.NoError(t, err)

	_, err = orders.Pay(ctx, order.ID, domain.PaymentMethodWallet)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// order still pending, inventory still held
	got, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, got.Status)

	availability, err := inventory.GetAvailability(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 4, availability.Tiers[0].Available)

	// top up and retry
	_, err = wallet.Credit(ctx, "u1", 5000, "Wallet top up")
	require.NoError(t, err)

	paid, err := orders.Pay(ctx, order.ID, domain.PaymentMethodWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, paid.Status)

	time.Sleep(50 * time.Millisecond)
}

// Concurrent order attempts across many users must never oversell, and
// every failed attempt must leave no trace in the order store.
func TestPurchaseFlow_ConcurrentCreates_NoOversell(t *testing.T) {
	inventory, _, orders := newPurchaseFlow(t)
	ctx := context.Background()

	require.NoError(t, inventory.Seed(ctx, "e1", []domain.SeedTier{
		{Name: "General", PriceCents: 5000, Capacity: 10},
	}))

	const workers = 40

	var wg sync.WaitGroup
	var mu sync.Mutex
	var created []*domain.Order

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := orders.Create(ctx, "u1", "e1", []domain.ReserveRequest{
				{Tier: "General", Quantity: 1},
			})
			if err != nil {
				return
			}
			mu.Lock()
			created = append(created, order)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, created, 10)

	availability, err := inventory.GetAvailability(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 0, availability.Tiers[0].Available)
}
