package ports

import (
	"context"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	MarkPaid(ctx context.Context, id string) error
	ExpireOverdue(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error)
}
