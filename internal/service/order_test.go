package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newOrderService(t *testing.T) (*OrderService, *mocks.MockOrderRepo, *mocks.MockInventoryLedger, *mocks.MockWalletLedger, *mocks.MockSalesNotifier) {
	orderRepo := mocks.NewMockOrderRepo(t)
	inventory := mocks.NewMockInventoryLedger(t)
	wallet := mocks.NewMockWalletLedger(t)
	notifier := mocks.NewMockSalesNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, inventory, wallet, notifier, 15*time.Minute, log)
	return svc, orderRepo, inventory, wallet, notifier
}

func TestOrderService_Create(t *testing.T) {
	svc, orderRepo, inventory, _, _ := newOrderService(t)

	requests := []domain.ReserveRequest{
		{Tier: "General", Quantity: 2},
		{Tier: "VIP", Quantity: 1},
	}
	reserved := []domain.ReservedItem{
		{Tier: "General", Quantity: 2, UnitPriceCents: 5000},
		{Tier: "VIP", Quantity: 1, UnitPriceCents: 12000},
	}

	inventory.EXPECT().Reserve(mock.Anything, "e1", requests).Return(reserved, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), "u1", "e1", requests)

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "e1", order.EventID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, int64(22000), order.TotalCents)
	assert.Len(t, order.Items, 2)
}

func TestOrderService_Create_EmptyOrder(t *testing.T) {
	svc, _, _, _, _ := newOrderService(t)

	_, err := svc.Create(context.Background(), "u1", "e1", nil)

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestOrderService_Create_InvalidQuantity(t *testing.T) {
	svc, _, _, _, _ := newOrderService(t)

	_, err := svc.Create(context.Background(), "u1", "e1", []domain.ReserveRequest{
		{Tier: "General", Quantity: 0},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_Create_InsufficientAvailability(t *testing.T) {
	svc, _, inventory, _, _ := newOrderService(t)

	requests := []domain.ReserveRequest{{Tier: "General", Quantity: 5}}
	inventory.EXPECT().Reserve(mock.Anything, "e1", requests).
		Return(nil, domain.ErrInsufficientAvailability)

	_, err := svc.Create(context.Background(), "u1", "e1", requests)

	assert.ErrorIs(t, err, domain.ErrInsufficientAvailability)
}

func TestOrderService_Create_ReleasesOnInsertFailure(t *testing.T) {
	svc, orderRepo, inventory, _, _ := newOrderService(t)

	requests := []domain.ReserveRequest{{Tier: "General", Quantity: 1}}
	reserved := []domain.ReservedItem{{Tier: "General", Quantity: 1, UnitPriceCents: 5000}}

	inventory.EXPECT().Reserve(mock.Anything, "e1", requests).Return(reserved, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	inventory.EXPECT().Release(mock.Anything, "e1", reserved).Return(nil)

	_, err := svc.Create(context.Background(), "u1", "e1", requests)

	require.Error(t, err)
}

func TestOrderService_Pay_Wallet(t *testing.T) {
	svc, orderRepo, _, wallet, notifier := newOrderService(t)

	pending := &domain.Order{
		ID:         "o1",
		EventID:    "e1",
		UserID:     "u1",
		TotalCents: 10000,
		Status:     domain.OrderStatusPending,
	}

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(pending, nil)
	wallet.EXPECT().Debit(mock.Anything, "u1", int64(10000), mock.Anything).Return(int64(0), nil)
	orderRepo.EXPECT().MarkPaid(mock.Anything, "o1").Return(nil)
	notifier.EXPECT().NotifyOrderPaid(mock.Anything, mock.Anything).Return()

	order, err := svc.Pay(context.Background(), "o1", domain.PaymentMethodWallet)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOrderService_Pay_Card_NoDebit(t *testing.T) {
	svc, orderRepo, _, _, notifier := newOrderService(t)

	pending := &domain.Order{
		ID:         "o1",
		UserID:     "u1",
		TotalCents: 10000,
		Status:     domain.OrderStatusPending,
	}

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(pending, nil)
	orderRepo.EXPECT().MarkPaid(mock.Anything, "o1").Return(nil)
	notifier.EXPECT().NotifyOrderPaid(mock.Anything, mock.Anything).Return()

	order, err := svc.Pay(context.Background(), "o1", domain.PaymentMethodCard)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Pay_AlreadyPaid_NoOp(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService(t)

	paid := &domain.Order{
		ID:         "o1",
		UserID:     "u1",
		TotalCents: 10000,
		Status:     domain.OrderStatusPaid,
	}

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(paid, nil)

	order, err := svc.Pay(context.Background(), "o1", domain.PaymentMethodWallet)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
}

func TestOrderService_Pay_Expired(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService(t)

	expired := &domain.Order{ID: "o1", Status: domain.OrderStatusExpired}
	orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(expired, nil)

	_, err := svc.Pay(context.Background(), "o1", domain.PaymentMethodWallet)

	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestOrderService_Pay_InsufficientFunds(t *testing.T) {
	svc, orderRepo, _, wallet, _ := newOrderService(t)

	pending := &domain.Order{
		ID:         "o1",
		UserID:     "u1",
		TotalCents: 10000,
		Status:     domain.OrderStatusPending,
	}

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(pending, nil)
	wallet.EXPECT().Debit(mock.Anything, "u1", int64(10000), mock.Anything).
		Return(int64(0), domain.ErrInsufficientFunds)

	_, err := svc.Pay(context.Background(), "o1", domain.PaymentMethodWallet)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestOrderService_Pay_LostRace_RefundsDebit(t *testing.T) {
	svc, orderRepo, _, wallet, _ := newOrderService(t)

	pending := &domain.Order{
		ID:         "o1",
		UserID:     "u1",
		TotalCents: 10000,
		Status:     domain.OrderStatusPending,
	}

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(pending, nil)
	wallet.EXPECT().Debit(mock.Anything, "u1", int64(10000), mock.Anything).Return(int64(0), nil)
	orderRepo.EXPECT().MarkPaid(mock.Anything, "o1").Return(domain.ErrOrderNotPending)
	wallet.EXPECT().Credit(mock.Anything, "u1", int64(10000), mock.Anything).Return(int64(10000), nil)

	_, err := svc.Pay(context.Background(), "o1", domain.PaymentMethodWallet)

	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestOrderService_Pay_UnknownMethod(t *testing.T) {
	svc, _, _, _, _ := newOrderService(t)

	_, err := svc.Pay(context.Background(), "o1", domain.PaymentMethod("crypto"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_ExpireOverdue(t *testing.T) {
	svc, orderRepo, inventory, _, notifier := newOrderService(t)

	expired := []*domain.Order{
		{
			ID:      "o1",
			EventID: "e1",
			UserID:  "u1",
			Items: []domain.OrderItem{
				{Tier: "General", Quantity: 2, UnitPriceCents: 5000},
			},
			Status: domain.OrderStatusExpired,
		},
	}

	orderRepo.EXPECT().ExpireOverdue(mock.Anything, 15*time.Minute).Return(expired, nil)
	inventory.EXPECT().Release(mock.Anything, "e1", []domain.ReservedItem{
		{Tier: "General", Quantity: 2, UnitPriceCents: 5000},
	}).Return(nil)
	notifier.EXPECT().NotifyOrderExpired(mock.Anything, expired[0]).Return()

	got, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_ExpireOverdue_Empty(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService(t)

	orderRepo.EXPECT().ExpireOverdue(mock.Anything, 15*time.Minute).Return(nil, nil)

	got, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}
