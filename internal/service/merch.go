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

// MerchService mirrors OrderService against per-product stock. All sizes
// of a product draw from one stock pool; size is carried for display only.
type MerchService struct {
	productRepo ports.ProductRepo
	orderRepo   ports.MerchOrderRepo
	stock       ports.StockLedger
	wallet      ports.WalletLedger
	notifier    ports.SalesNotifier
	pendingTTL  time.Duration
	logger      logger.Logger
}

func NewMerchService(
	productRepo ports.ProductRepo,
	orderRepo ports.MerchOrderRepo,
	stock ports.StockLedger,
	wallet ports.WalletLedger,
	notifier ports.SalesNotifier,
	pendingTTL time.Duration,
	logger logger.Logger,
) *MerchService {
	return &MerchService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		stock:       stock,
		wallet:      wallet,
		notifier:    notifier,
		pendingTTL:  pendingTTL,
		logger:      logger,
	}
}

func (s *MerchService) CreateProduct(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	if input.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}

	product := &domain.Product{
		ID:          uuid.New().String(),
		EventID:     input.EventID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Category:    input.Category,
		Stock:       input.Stock,
		Sizes:       input.Sizes,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info("product created",
		logger.String("product_id", product.ID),
		logger.String("event_id", product.EventID),
	)

	return product, nil
}

func (s *MerchService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

func (s *MerchService) ListProducts(ctx context.Context, eventID string) ([]*domain.Product, error) {
	if eventID == "" {
		return s.productRepo.List(ctx)
	}
	return s.productRepo.ListByEvent(ctx, eventID)
}

func (s *MerchService) Stats(ctx context.Context) (*domain.MerchStats, error) {
	return s.productRepo.Stats(ctx)
}

// Create reserves stock for every requested product as one all-or-nothing
// batch and persists a pending merch order priced at the reserved unit
// prices.
func (s *MerchService) Create(ctx context.Context, userID, eventID string, items []domain.StockRequest) (*domain.MerchOrder, error) {
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

	reserved, err := s.stock.ReserveStock(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("reserve stock: %w", err)
	}

	orderItems := make([]domain.MerchOrderItem, len(reserved))
	var total int64
	for i, r := range reserved {
		orderItems[i] = domain.MerchOrderItem{
			ProductID:      r.ProductID,
			Name:           r.Name,
			Quantity:       r.Quantity,
			UnitPriceCents: r.UnitPriceCents,
			Size:           r.Size,
		}
		total += int64(r.Quantity) * r.UnitPriceCents
	}

	now := time.Now().UTC()
	order := &domain.MerchOrder{
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
		if relErr := s.stock.ReleaseStock(ctx, reserved); relErr != nil {
			s.logger.Error("failed to release stock after failed merch order insert",
				logger.String("event_id", eventID),
				logger.String("error", relErr.Error()),
			)
		}
		return nil, fmt.Errorf("create merch order: %w", err)
	}

	s.logger.Info("merch order created",
		logger.String("order_id", order.ID),
		logger.String("user_id", userID),
		logger.Int64("total_cents", total),
	)

	return order, nil
}

func (s *MerchService) Get(ctx context.Context, orderID string) (*domain.MerchOrder, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

// Pay follows the same settlement contract as ticket orders: status is
// checked before any debit, re-paying a paid order is a no-op success.
func (s *MerchService) Pay(ctx context.Context, orderID string, method domain.PaymentMethod) (*domain.MerchOrder, error) {
	if method != domain.PaymentMethodWallet && method != domain.PaymentMethodCard {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get merch order: %w", err)
	}

	if order.Status == domain.OrderStatusPaid {
		return order, nil
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.ErrOrderNotPending
	}

	if method == domain.PaymentMethodWallet {
		if _, err = s.wallet.Debit(ctx, order.UserID, order.TotalCents,
			fmt.Sprintf("Merch order %s wallet payment", order.ID),
		); err != nil {
			return nil, fmt.Errorf("debit wallet: %w", err)
		}
	}

	if err = s.orderRepo.MarkPaid(ctx, order.ID); err != nil {
		if method == domain.PaymentMethodWallet {
			if _, crErr := s.wallet.Credit(ctx, order.UserID, order.TotalCents,
				fmt.Sprintf("Merch order %s payment reversal", order.ID),
			); crErr != nil {
				s.logger.Error("failed to reverse debit after lost payment race",
					logger.String("order_id", order.ID),
					logger.String("error", crErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("mark merch order paid: %w", err)
	}

	order.Status = domain.OrderStatusPaid
	order.UpdatedAt = time.Now().UTC()

	s.logger.Info("merch order paid",
		logger.String("order_id", order.ID),
		logger.String("user_id", order.UserID),
		logger.String("method", string(method)),
		logger.Int64("total_cents", order.TotalCents),
	)

	go s.notifier.NotifyMerchOrderPaid(context.WithoutCancel(ctx), order)

	return order, nil
}

// ExpireOverdue mirrors the ticket path: overdue pending merch orders are
// expired and their stock is returned to the pool.
func (s *MerchService) ExpireOverdue(ctx context.Context) ([]*domain.MerchOrder, error) {
	expired, err := s.orderRepo.ExpireOverdue(ctx, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("expire overdue merch orders: %w", err)
	}

	for _, o := range expired {
		reserved := make([]domain.ReservedStock, len(o.Items))
		for i, it := range o.Items {
			reserved[i] = domain.ReservedStock{
				ProductID:      it.ProductID,
				Name:           it.Name,
				Quantity:       it.Quantity,
				UnitPriceCents: it.UnitPriceCents,
				Size:           it.Size,
			}
		}
		if err = s.stock.ReleaseStock(ctx, reserved); err != nil {
			s.logger.Error("failed to release stock of expired merch order",
				logger.String("order_id", o.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if len(expired) > 0 {
		s.logger.Info("overdue merch orders expired",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}
