package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
)

type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func NewOrderRepo() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*domain.Order),
	}
}

func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	c.Items = append([]domain.OrderItem(nil), o.Items...)
	return &c
}

func (r *OrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			res = append(res, cloneOrder(o))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})

	return res, nil
}

// MarkPaid transitions pending to paid under the store lock, so two
// concurrent payers cannot both observe pending.
func (r *OrderRepository) MarkPaid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != domain.OrderStatusPending {
		return domain.ErrOrderNotPending
	}

	o.Status = domain.OrderStatusPaid
	o.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *OrderRepository) ExpireOverdue(_ context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)

	var res []*domain.Order
	for _, o := range r.orders {
		if o.Status == domain.OrderStatusPending && o.CreatedAt.Before(cutoff) {
			o.Status = domain.OrderStatusExpired
			o.UpdatedAt = time.Now().UTC()
			res = append(res, cloneOrder(o))
		}
	}

	return res, nil
}
