package scheduler

import (
	"context"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type orderExpirer interface {
	ExpireOverdue(ctx context.Context) ([]*domain.Order, error)
}

type merchExpirer interface {
	ExpireOverdue(ctx context.Context) ([]*domain.MerchOrder, error)
}

// Scheduler periodically expires pending orders that outlived their TTL
// and returns their reservations to inventory.
type Scheduler struct {
	orderService orderExpirer
	merchService merchExpirer
	interval     time.Duration
	logger       logger.Logger
}

func New(
	orderService orderExpirer,
	merchService merchExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		orderService: orderService,
		merchService: merchService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.orderService.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue orders",
			logger.String("error", err.Error()),
		)
	}
	for _, o := range expired {
		s.logger.Info("order expired",
			logger.String("order_id", o.ID),
			logger.String("user_id", o.UserID),
			logger.String("event_id", o.EventID),
		)
	}

	expiredMerch, err := s.merchService.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue merch orders",
			logger.String("error", err.Error()),
		)
	}
	for _, o := range expiredMerch {
		s.logger.Info("merch order expired",
			logger.String("order_id", o.ID),
			logger.String("user_id", o.UserID),
		)
	}
}
