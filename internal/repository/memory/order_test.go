package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(id, userID string, createdAt time.Time) *domain.Order {
	return &domain.Order{
		ID:      id,
		EventID: "e1",
		UserID:  userID,
		Items: []domain.OrderItem{
			{Tier: "General", Quantity: 1, UnitPriceCents: 5000},
		},
		TotalCents: 5000,
		Status:     domain.OrderStatusPending,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestOrderRepo_GetByID_NotFound(t *testing.T) {
	repo := NewOrderRepo()

	_, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepo_MarkPaid(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingOrder("o1", "u1", time.Now().UTC())))
	require.NoError(t, repo.MarkPaid(ctx, "o1"))

	order, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
}

func TestOrderRepo_MarkPaid_OnlyOnceUnderConcurrency(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingOrder("o1", "u1", time.Now().UTC())))

	const workers = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.MarkPaid(ctx, "o1"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestOrderRepo_MarkPaid_Expired(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	stale := pendingOrder("o1", "u1", time.Now().UTC().Add(-time.Hour))
	require.NoError(t, repo.Create(ctx, stale))

	expired, err := repo.ExpireOverdue(ctx, 15*time.Minute)
	require.NoError(t, err)
	require.Len(t, expired, 1)

	err = repo.MarkPaid(ctx, "o1")
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestOrderRepo_ExpireOverdue_SkipsFreshAndPaid(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	fresh := pendingOrder("fresh", "u1", time.Now().UTC())
	stale := pendingOrder("stale", "u1", time.Now().UTC().Add(-time.Hour))
	paid := pendingOrder("paid", "u1", time.Now().UTC().Add(-time.Hour))

	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, paid))
	require.NoError(t, repo.MarkPaid(ctx, "paid"))

	expired, err := repo.ExpireOverdue(ctx, 15*time.Minute)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "stale", expired[0].ID)

	order, err := repo.GetByID(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestOrderRepo_ListByUser(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, pendingOrder("old", "u1", now.Add(-time.Minute))))
	require.NoError(t, repo.Create(ctx, pendingOrder("new", "u1", now)))
	require.NoError(t, repo.Create(ctx, pendingOrder("other", "u2", now)))

	orders, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "new", orders[0].ID)
	assert.Equal(t, "old", orders[1].ID)
}
