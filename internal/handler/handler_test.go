package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/handler/dto"
	hmocks "github.com/nextswitchio/guestly/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockInventorySvc, *hmocks.MockOrderSvc, *hmocks.MockWalletSvc, *hmocks.MockMerchSvc, http.Handler) {
	t.Helper()
	inventorySvc := hmocks.NewMockInventorySvc(t)
	orderSvc := hmocks.NewMockOrderSvc(t)
	walletSvc := hmocks.NewMockWalletSvc(t)
	merchSvc := hmocks.NewMockMerchSvc(t)

	h := NewHandler(inventorySvc, orderSvc, walletSvc, merchSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events/:id/tiers", h.SeedTiers)
		api.GET("/events/:id/tiers", h.GetAvailability)

		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/pay", h.PayOrder)
		api.GET("/users/:id/orders", h.GetUserOrders)

		api.GET("/users/:id/wallet", h.GetWallet)
		api.POST("/users/:id/wallet/topup", h.TopUpWallet)
		api.GET("/users/:id/wallet/transactions", h.GetTransactions)
		api.GET("/users/:id/savings", h.GetSavings)
		api.POST("/users/:id/savings/goal", h.SetSavingsGoal)
		api.POST("/users/:id/savings/add", h.AddSavings)

		api.POST("/products", h.CreateProduct)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/merch/stats", h.MerchStats)
		api.POST("/merch/orders", h.CreateMerchOrder)
		api.GET("/merch/orders/:id", h.GetMerchOrder)
		api.POST("/merch/orders/:id/pay", h.PayMerchOrder)
	}

	return inventorySvc, orderSvc, walletSvc, merchSvc, r
}

// --- Tickets ---

func TestHandler_SeedTiers_Success(t *testing.T) {
	inventorySvc, _, _, _, r := setupRouter(t)

	inventorySvc.EXPECT().Seed(mock.Anything, "e1", mock.Anything).Return(nil)

	body, _ := json.Marshal(dto.SeedTiersRequest{
		Tiers: []dto.SeedTierRequest{
			{Name: "VIP", PriceCents: 25000, Capacity: 10},
			{Name: "General", PriceCents: 5000, Capacity: 100},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/tiers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_SeedTiers_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"tiers":[]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/tiers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_Success(t *testing.T) {
	inventorySvc, _, _, _, r := setupRouter(t)

	availability := &domain.TicketAvailability{
		EventID: "e1",
		Tiers: []domain.TicketTier{
			{Name: "General", PriceCents: 5000, Available: 42},
		},
	}
	inventorySvc.EXPECT().GetAvailability(mock.Anything, "e1").Return(availability, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/e1/tiers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tiers, 1)
	assert.Equal(t, 42, resp.Tiers[0].Available)
}

func TestHandler_GetAvailability_NotSeeded(t *testing.T) {
	inventorySvc, _, _, _, r := setupRouter(t)

	inventorySvc.EXPECT().GetAvailability(mock.Anything, "ghost").Return(nil, domain.ErrEventNotSeeded)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/ghost/tiers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Orders ---

func TestHandler_CreateOrder_Success(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	order := &domain.Order{
		ID:      uuid.New().String(),
		EventID: "e1",
		UserID:  "u1",
		Items: []domain.OrderItem{
			{Tier: "General", Quantity: 2, UnitPriceCents: 5000},
		},
		TotalCents: 10000,
		Status:     domain.OrderStatusPending,
		CreatedAt:  time.Now(),
	}

	orderSvc.EXPECT().Create(mock.Anything, "u1", "e1", mock.Anything).Return(order, nil)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		UserID:  "u1",
		EventID: "e1",
		Items:   []dto.OrderItemRequest{{Tier: "General", Quantity: 2}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10000), resp.TotalCents)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateOrder_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"u1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateOrder_SoldOut(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	orderSvc.EXPECT().Create(mock.Anything, "u1", "e1", mock.Anything).Return(nil, domain.ErrInsufficientAvailability)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		UserID:  "u1",
		EventID: "e1",
		Items:   []dto.OrderItemRequest{{Tier: "General", Quantity: 500}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetOrder_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	orderID := uuid.New().String()
	orderSvc.EXPECT().Get(mock.Anything, orderID).Return(nil, domain.ErrOrderNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_PayOrder_Success(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	orderID := uuid.New().String()
	paid := &domain.Order{
		ID:         orderID,
		EventID:    "e1",
		UserID:     "u1",
		TotalCents: 10000,
		Status:     domain.OrderStatusPaid,
		CreatedAt:  time.Now(),
	}

	orderSvc.EXPECT().Pay(mock.Anything, orderID, domain.PaymentMethodWallet).Return(paid, nil)

	body, _ := json.Marshal(dto.PayRequest{Method: "wallet"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "paid", resp.Status)
}

func TestHandler_PayOrder_InvalidMethod(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"method":"cash"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+uuid.New().String()+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PayOrder_InsufficientFunds(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	orderID := uuid.New().String()
	orderSvc.EXPECT().Pay(mock.Anything, orderID, domain.PaymentMethodWallet).Return(nil, domain.ErrInsufficientFunds)

	body, _ := json.Marshal(dto.PayRequest{Method: "wallet"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PayOrder_Expired(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	orderID := uuid.New().String()
	orderSvc.EXPECT().Pay(mock.Anything, orderID, domain.PaymentMethodCard).Return(nil, domain.ErrOrderNotPending)

	body, _ := json.Marshal(dto.PayRequest{Method: "card"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserOrders_Success(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	orders := []*domain.Order{
		{ID: "o1", EventID: "e1", UserID: "u1", Status: domain.OrderStatusPending, CreatedAt: time.Now()},
		{ID: "o2", EventID: "e1", UserID: "u1", Status: domain.OrderStatusPaid, CreatedAt: time.Now()},
	}
	orderSvc.EXPECT().ListByUser(mock.Anything, "u1").Return(orders, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Wallet ---

func TestHandler_GetWallet_Success(t *testing.T) {
	_, _, walletSvc, _, r := setupRouter(t)

	walletSvc.EXPECT().EnsureWallet(mock.Anything, "u1").Return(&domain.Wallet{UserID: "u1", BalanceCents: 7500}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/wallet", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7500), resp.BalanceCents)
}

func TestHandler_TopUpWallet_Success(t *testing.T) {
	_, _, walletSvc, _, r := setupRouter(t)

	walletSvc.EXPECT().Credit(mock.Anything, "u1", int64(5000), "Wallet top up").Return(int64(12500), nil)

	body, _ := json.Marshal(dto.TopUpRequest{AmountCents: 5000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/wallet/topup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12500), resp.BalanceCents)
}

func TestHandler_TopUpWallet_BadAmount(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"amount_cents":-100}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/wallet/topup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTransactions_Success(t *testing.T) {
	_, _, walletSvc, _, r := setupRouter(t)

	transactions := []*domain.Transaction{
		{ID: "t1", AmountCents: 5000, Direction: domain.DirectionCredit, Description: "Wallet top up", CreatedAt: time.Now()},
		{ID: "t2", AmountCents: 5000, Direction: domain.DirectionDebit, Description: "Order payment", CreatedAt: time.Now()},
	}
	walletSvc.EXPECT().ListTransactions(mock.Anything, "u1").Return(transactions, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/wallet/transactions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "credit", resp[0].Direction)
}

func TestHandler_SetSavingsGoal_Success(t *testing.T) {
	_, _, walletSvc, _, r := setupRouter(t)

	walletSvc.EXPECT().SetSavingsGoal(mock.Anything, "u1", int64(50000)).Return(nil)

	body, _ := json.Marshal(dto.SavingsGoalRequest{GoalCents: 50000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/savings/goal", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddSavings_InsufficientFunds(t *testing.T) {
	_, _, walletSvc, _, r := setupRouter(t)

	walletSvc.EXPECT().AddSavings(mock.Anything, "u1", int64(5000)).Return(domain.ErrInsufficientFunds)

	body, _ := json.Marshal(dto.AddSavingsRequest{AmountCents: 5000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/savings/add", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetSavings_Success(t *testing.T) {
	_, _, walletSvc, _, r := setupRouter(t)

	walletSvc.EXPECT().GetSavings(mock.Anything, "u1").Return(&domain.SavingsTarget{UserID: "u1", GoalCents: 50000, ProgressCents: 12000}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/savings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SavingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12000), resp.ProgressCents)
}

// --- Merch ---

func TestHandler_CreateProduct_Success(t *testing.T) {
	_, _, _, merchSvc, r := setupRouter(t)

	product := &domain.Product{
		ID:         uuid.New().String(),
		EventID:    "e1",
		Name:       "Tour Hoodie",
		PriceCents: 4500,
		Stock:      50,
		Sizes:      []string{"S", "M", "L"},
		Active:     true,
		CreatedAt:  time.Now(),
	}
	merchSvc.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(product, nil)

	body, _ := json.Marshal(dto.CreateProductRequest{
		EventID:    "e1",
		Name:       "Tour Hoodie",
		PriceCents: 4500,
		Stock:      50,
		Sizes:      []string{"S", "M", "L"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tour Hoodie", resp.Name)
}

func TestHandler_ListProducts_Success(t *testing.T) {
	_, _, _, merchSvc, r := setupRouter(t)

	products := []*domain.Product{
		{ID: "p1", EventID: "e1", Name: "Hoodie", PriceCents: 4500},
		{ID: "p2", EventID: "e1", Name: "Poster", PriceCents: 1500},
	}
	merchSvc.EXPECT().ListProducts(mock.Anything, "e1").Return(products, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products?event_id=e1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetProduct_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MerchStats_Success(t *testing.T) {
	_, _, _, merchSvc, r := setupRouter(t)

	merchSvc.EXPECT().Stats(mock.Anything).Return(&domain.MerchStats{TotalProducts: 3, UnitsSold: 17, RevenueCents: 76500}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/merch/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MerchStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(76500), resp.RevenueCents)
}

func TestHandler_CreateMerchOrder_OutOfStock(t *testing.T) {
	_, _, _, merchSvc, r := setupRouter(t)

	merchSvc.EXPECT().Create(mock.Anything, "u1", "e1", mock.Anything).Return(nil, domain.ErrInsufficientStock)

	body, _ := json.Marshal(dto.CreateMerchOrderRequest{
		UserID:  "u1",
		EventID: "e1",
		Items:   []dto.MerchItemRequest{{ProductID: "p1", Quantity: 99}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/merch/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PayMerchOrder_Success(t *testing.T) {
	_, _, _, merchSvc, r := setupRouter(t)

	orderID := uuid.New().String()
	paid := &domain.MerchOrder{
		ID:         orderID,
		EventID:    "e1",
		UserID:     "u1",
		TotalCents: 4500,
		Status:     domain.OrderStatusPaid,
		CreatedAt:  time.Now(),
	}
	merchSvc.EXPECT().Pay(mock.Anything, orderID, domain.PaymentMethodWallet).Return(paid, nil)

	body, _ := json.Marshal(dto.PayRequest{Method: "wallet"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/merch/orders/"+orderID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MerchOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "paid", resp.Status)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, orderSvc, _, _, r := setupRouter(t)

	orderID := uuid.New().String()
	orderSvc.EXPECT().Get(mock.Anything, orderID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
