package ports

import (
	"context"

	"github.com/nextswitchio/guestly/internal/domain"
)

type SalesNotifier interface {
	NotifyOrderPaid(ctx context.Context, order *domain.Order)
	NotifyOrderExpired(ctx context.Context, order *domain.Order)
	NotifyMerchOrderPaid(ctx context.Context, order *domain.MerchOrder)
}
