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
)

func newMerchService(t *testing.T) (*MerchService, *mocks.MockProductRepo, *mocks.MockMerchOrderRepo, *mocks.MockStockLedger, *mocks.MockWalletLedger, *mocks.MockSalesNotifier) {
	productRepo := mocks.NewMockProductRepo(t)
	orderRepo := mocks.NewMockMerchOrderRepo(t)
	stock := mocks.NewMockStockLedger(t)
	wallet := mocks.NewMockWalletLedger(t)
	notifier := mocks.NewMockSalesNotifier(t)
	log := newTestLogger(t)

	svc := NewMerchService(productRepo, orderRepo, stock, wallet, notifier, 15*time.Minute, log)
	return svc, productRepo, orderRepo, stock, wallet, notifier
}

func TestMerchService_CreateProduct(t *testing.T) {
	svc, productRepo, _, _, _, _ := newMerchService(t)

	productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.CreateProduct(context.Background(), domain.CreateProductInput{
		EventID:    "e1",
		Name:       "Tour Hoodie",
		PriceCents: 4500,
		Category:   "apparel",
		Stock:      50,
		Sizes:      []string{"S", "M", "L"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.Active)
	assert.Equal(t, 50, product.Stock)
	assert.Equal(t, 0, product.Sold)
}

func TestMerchService_CreateProduct_Validation(t *testing.T) {
	svc, _, _, _, _, _ := newMerchService(t)

	cases := []struct {
		name  string
		input domain.CreateProductInput
	}{
		{"missing name", domain.CreateProductInput{EventID: "e1", PriceCents: 100, Stock: 1}},
		{"missing event", domain.CreateProductInput{Name: "Cap", PriceCents: 100, Stock: 1}},
		{"zero price", domain.CreateProductInput{EventID: "e1", Name: "Cap", PriceCents: 0, Stock: 1}},
		{"negative stock", domain.CreateProductInput{EventID: "e1", Name: "Cap", PriceCents: 100, Stock: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestMerchService_ListProducts_ByEvent(t *testing.T) {
	svc, productRepo, _, _, _, _ := newMerchService(t)

	products := []*domain.Product{{ID: "p1", EventID: "e1"}}
	productRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(products, nil)

	got, err := svc.ListProducts(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestMerchService_ListProducts_All(t *testing.T) {
	svc, productRepo, _, _, _, _ := newMerchService(t)

	productRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	_, err := svc.ListProducts(context.Background(), "")

	require.NoError(t, err)
}

func TestMerchService_Create(t *testing.T) {
	svc, _, orderRepo, stock, _, _ := newMerchService(t)

	requests := []domain.StockRequest{
		{ProductID: "p1", Quantity: 2, Size: "M"},
	}
	reserved := []domain.ReservedStock{
		{ProductID: "p1", Name: "Tour Hoodie", Quantity: 2, UnitPriceCents: 4500, Size: "M"},
	}

	stock.EXPECT().ReserveStock(mock.Anything, requests).Return(reserved, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), "u1", "e1", requests)

	require.NoError(t, err)
	assert.Equal(t, int64(9000), order.TotalCents)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "Tour Hoodie", order.Items[0].Name)
}

func TestMerchService_Create_InsufficientStock(t *testing.T) {
	svc, _, _, stock, _, _ := newMerchService(t)

	requests := []domain.StockRequest{{ProductID: "p1", Quantity: 99}}
	stock.EXPECT().ReserveStock(mock.Anything, requests).
		Return(nil, domain.ErrInsufficientStock)

	_, err := svc.Create(context.Background(), "u1", "e1", requests)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestMerchService_Create_ReleasesOnInsertFailure(t *testing.T) {
	svc, _, orderRepo, stock, _, _ := newMerchService(t)

	requests := []domain.StockRequest{{ProductID: "p1", Quantity: 1}}
	reserved := []domain.ReservedStock{{ProductID: "p1", Name: "Cap", Quantity: 1, UnitPriceCents: 1500}}

	stock.EXPECT().ReserveStock(mock.Anything, requests).Return(reserved, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	stock.EXPECT().ReleaseStock(mock.Anything, reserved).Return(nil)

	_, err := svc.Create(context.Background(), "u1", "e1", requests)

	require.Error(t, err)
}

func TestMerchService_Pay_Wallet(t *testing.T) {
	svc, _, orderRepo, _, wallet, notifier := newMerchService(t)

	pending := &domain.MerchOrder{
		ID:         "m1",
		UserID:     "u1",
		TotalCents: 9000,
		Status:     domain.OrderStatusPending,
	}

	orderRepo.EXPECT().GetByID(mock.Anything, "m1").Return(pending, nil)
	wallet.EXPECT().Debit(mock.Anything, "u1", int64(9000), mock.Anything).Return(int64(1000), nil)
	orderRepo.EXPECT().MarkPaid(mock.Anything, "m1").Return(nil)
	notifier.EXPECT().NotifyMerchOrderPaid(mock.Anything, mock.Anything).Return()

	order, err := svc.Pay(context.Background(), "m1", domain.PaymentMethodWallet)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMerchService_Pay_AlreadyPaid_NoOp(t *testing.T) {
	svc, _, orderRepo, _, _, _ := newMerchService(t)

	paid := &domain.MerchOrder{ID: "m1", Status: domain.OrderStatusPaid}
	orderRepo.EXPECT().GetByID(mock.Anything, "m1").Return(paid, nil)

	order, err := svc.Pay(context.Background(), "m1", domain.PaymentMethodWallet)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
}

func TestMerchService_Pay_LostRace_RefundsDebit(t *testing.T) {
	svc, _, orderRepo, _, wallet, _ := newMerchService(t)

	pending := &domain.MerchOrder{
		ID:         "m1",
		UserID:     "u1",
		TotalCents: 9000,
		Status:     domain.OrderStatusPending,
	}

	orderRepo.EXPECT().GetByID(mock.Anything, "m1").Return(pending, nil)
	wallet.EXPECT().Debit(mock.Anything, "u1", int64(9000), mock.Anything).Return(int64(0), nil)
	orderRepo.EXPECT().MarkPaid(mock.Anything, "m1").Return(domain.ErrOrderNotPending)
	wallet.EXPECT().Credit(mock.Anything, "u1", int64(9000), mock.Anything).Return(int64(9000), nil)

	_, err := svc.Pay(context.Background(), "m1", domain.PaymentMethodWallet)

	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestMerchService_ExpireOverdue(t *testing.T) {
	svc, _, orderRepo, stock, _, _ := newMerchService(t)

	expired := []*domain.MerchOrder{
		{
			ID:     "m1",
			UserID: "u1",
			Items: []domain.MerchOrderItem{
				{ProductID: "p1", Name: "Cap", Quantity: 1, UnitPriceCents: 1500},
			},
			Status: domain.OrderStatusExpired,
		},
	}

	orderRepo.EXPECT().ExpireOverdue(mock.Anything, 15*time.Minute).Return(expired, nil)
	stock.EXPECT().ReleaseStock(mock.Anything, []domain.ReservedStock{
		{ProductID: "p1", Name: "Cap", Quantity: 1, UnitPriceCents: 1500},
	}).Return(nil)

	got, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMerchService_Stats(t *testing.T) {
	svc, productRepo, _, _, _, _ := newMerchService(t)

	stats := &domain.MerchStats{TotalProducts: 3, UnitsSold: 12, RevenueCents: 54000}
	productRepo.EXPECT().Stats(mock.Anything).Return(stats, nil)

	got, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
