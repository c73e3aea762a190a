package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type OrderService struct {
	orderRepo  ports.OrderRepo
	inventory  ports.InventoryLedger
	wallet     ports.WalletLedger
	notifier   ports.SalesNotifier
	pendingTTL time.Duration
	logger     logger.Logger
}

func NewOrderService(
	orderRepo ports.OrderRepo,
	inventory ports.InventoryLedger,
	wallet ports.WalletLedger,
	notifier ports.SalesNotifier,
	pendingTTL time.Duration,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		inventory:  inventory,
		wallet:     wallet,
		notifier:   notifier,
		pendingTTL: pendingTTL,
		logger:     logger,
	}
}

// Create reserves the requested tiers as one all-or-nothing batch and
// persists a pending order priced at the reserved unit prices. On any
// failure no order exists and no inventory is held.
func (s *OrderService) Create(ctx context.Context, userID, eventID string, items []domain.ReserveRequest) (*domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
		}
	}

	reserved, err := s.inventory.Reserve(ctx, eventID, items)
	if err != nil {
		return nil, fmt.Errorf("reserve tickets: %w", err)
	}

	orderItems := make([]domain.OrderItem, len(reserved))
	var total int64
	for i, r := range reserved {
		orderItems[i] = domain.OrderItem{
			Tier:           r.Tier,
			Quantity:       r.Quantity,
			UnitPriceCents: r.UnitPriceCents,
		}
		total += int64(r.Quantity) * r.UnitPriceCents
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         uuid.New().String(),
		EventID:    eventID,
		UserID:     userID,
		Items:      orderItems,
		TotalCents: total,
		Status:     domain.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.orderRepo.Create(ctx, order); err != nil {
		// give the reservation back so a failed insert holds nothing
		if relErr := s.inventory.Release(ctx, eventID, reserved); relErr != nil {
			s.logger.Error("failed to release tickets after failed order insert",
				logger.String("event_id", eventID),
				logger.String("error", relErr.Error()),
			)
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		logger.String("order_id", order.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int64("total_cents", total),
	)

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// Pay settles a pending order. Paying an already paid order is a no-op
// success: the status is checked before any debit, so a retry never
// charges twice. On insufficient funds the order stays pending and its
// inventory stays held for a later retry.
func (s *OrderService) Pay(ctx context.Context, orderID string, method domain.PaymentMethod) (*domain.Order, error) {
	if method != domain.PaymentMethodWallet && method != domain.PaymentMethodCard {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Status == domain.OrderStatusPaid {
		return order, nil
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.ErrOrderNotPending
	}

	if method == domain.PaymentMethodWallet {
		if _, err = s.wallet.Debit(ctx, order.UserID, order.TotalCents,
			fmt.Sprintf("Order %s wallet payment", order.ID),
		); err != nil {
			return nil, fmt.Errorf("debit wallet: %w", err)
		}
	}

	if err = s.orderRepo.MarkPaid(ctx, order.ID); err != nil {
		// a concurrent payer or the expiry scheduler got here first;
		// the debit above must not stick
		if method == domain.PaymentMethodWallet {
			if _, crErr := s.wallet.Credit(ctx, order.UserID, order.TotalCents,
				fmt.Sprintf("Order %s payment reversal", order.ID),
			); crErr != nil {
				s.logger.Error("failed to reverse debit after lost payment race",
					logger.String("order_id", order.ID),
					logger.String("error", crErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	order.Status = domain.OrderStatusPaid
	order.UpdatedAt = time.Now().UTC()

	s.logger.Info("order paid",
		logger.String("order_id", order.ID),
		logger.String("user_id", order.UserID),
		logger.String("method", string(method)),
		logger.Int64("total_cents", order.TotalCents),
	)

	go s.notifier.NotifyOrderPaid(context.WithoutCancel(ctx), order)

	return order, nil
}

// ExpireOverdue moves pending orders older than the configured TTL to
// expired and releases their reservations. Invoked by the scheduler.
func (s *OrderService) ExpireOverdue(ctx context.Context) ([]*domain.Order, error) {
	expired, err := s.orderRepo.ExpireOverdue(ctx, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("expire overdue orders: %w", err)
	}

	for _, o := range expired {
		reserved := make([]domain.ReservedItem, len(o.Items))
		for i, it := range o.Items {
			reserved[i] = domain.ReservedItem{
				Tier:           it.Tier,
				Quantity:       it.Quantity,
				UnitPriceCents: it.UnitPriceCents,
			}
		}
		if err = s.inventory.Release(ctx, o.EventID, reserved); err != nil {
			s.logger.Error("failed to release tickets of expired order",
				logger.String("order_id", o.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
	}

	if len(expired) > 0 {
		s.logger.Info("overdue orders expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *OrderService) notifyExpired(ctx context.Context, orders []*domain.Order) {
	for _, o := range orders {
		s.notifier.NotifyOrderExpired(ctx, o)
	}
}
