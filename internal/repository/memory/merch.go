package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
)

type ProductRepository struct {
	mu       sync.Mutex
	products map[string]*domain.Product
}

func NewProductRepo() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]*domain.Product),
	}
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	c.Sizes = append([]string(nil), p.Sizes...)
	return &c
}

func (r *ProductRepository) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Active })
}

func (r *ProductRepository) ListByEvent(_ context.Context, eventID string) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Active && p.EventID == eventID })
}

func (r *ProductRepository) filter(keep func(*domain.Product) bool) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []*domain.Product
	for _, p := range r.products {
		if keep(p) {
			res = append(res, cloneProduct(p))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})

	return res, nil
}

func (r *ProductRepository) Stats(_ context.Context) (*domain.MerchStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s domain.MerchStats
	for _, p := range r.products {
		if p.Active {
			s.TotalProducts++
		}
		s.UnitsSold += p.Sold
		s.RevenueCents += int64(p.Sold) * p.PriceCents
	}

	return &s, nil
}

// ReserveStock checks every product before mutating any, under one lock:
// a failed product leaves all stock counters untouched.
func (r *ProductRepository) ReserveStock(_ context.Context, requests []domain.StockRequest) ([]domain.ReservedStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range requests {
		p, ok := r.products[req.ProductID]
		if !ok || !p.Active {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, req.ProductID)
		}
		if p.Stock < req.Quantity {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, p.Name)
		}
	}

	reserved := make([]domain.ReservedStock, 0, len(requests))
	for _, req := range requests {
		p := r.products[req.ProductID]
		p.Stock -= req.Quantity
		p.Sold += req.Quantity
		reserved = append(reserved, domain.ReservedStock{
			ProductID:      req.ProductID,
			Name:           p.Name,
			Quantity:       req.Quantity,
			UnitPriceCents: p.PriceCents,
			Size:           req.Size,
		})
	}

	return reserved, nil
}

func (r *ProductRepository) ReleaseStock(_ context.Context, items []domain.ReservedStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range items {
		if p, ok := r.products[it.ProductID]; ok {
			p.Stock += it.Quantity
			p.Sold -= it.Quantity
		}
	}

	return nil
}

type MerchOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*domain.MerchOrder
}

func NewMerchOrderRepo() *MerchOrderRepository {
	return &MerchOrderRepository{
		orders: make(map[string]*domain.MerchOrder),
	}
}

func cloneMerchOrder(o *domain.MerchOrder) *domain.MerchOrder {
	c := *o
	c.Items = append([]domain.MerchOrderItem(nil), o.Items...)
	return &c
}

func (r *MerchOrderRepository) Create(_ context.Context, o *domain.MerchOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.ID] = cloneMerchOrder(o)
	return nil
}

func (r *MerchOrderRepository) GetByID(_ context.Context, id string) (*domain.MerchOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrMerchOrderNotFound
	}
	return cloneMerchOrder(o), nil
}

func (r *MerchOrderRepository) MarkPaid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.ErrMerchOrderNotFound
	}
	if o.Status != domain.OrderStatusPending {
		return domain.ErrOrderNotPending
	}

	o.Status = domain.OrderStatusPaid
	o.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *MerchOrderRepository) ExpireOverdue(_ context.Context, olderThan time.Duration) ([]*domain.MerchOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)

	var res []*domain.MerchOrder
	for _, o := range r.orders {
		if o.Status == domain.OrderStatusPending && o.CreatedAt.Before(cutoff) {
			o.Status = domain.OrderStatusExpired
			o.UpdatedAt = time.Now().UTC()
			res = append(res, cloneMerchOrder(o))
		}
	}

	return res, nil
}
