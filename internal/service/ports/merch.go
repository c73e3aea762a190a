package ports

import (
	"context"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Product, error)
	Stats(ctx context.Context) (*domain.MerchStats, error)
	ReserveStock(ctx context.Context, requests []domain.StockRequest) ([]domain.ReservedStock, error)
	ReleaseStock(ctx context.Context, items []domain.ReservedStock) error
}

type MerchOrderRepo interface {
	Create(ctx context.Context, o *domain.MerchOrder) error
	GetByID(ctx context.Context, id string) (*domain.MerchOrder, error)
	MarkPaid(ctx context.Context, id string) error
	ExpireOverdue(ctx context.Context, olderThan time.Duration) ([]*domain.MerchOrder, error)
}
