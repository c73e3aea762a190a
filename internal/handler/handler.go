package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type InventorySvc interface {
	Seed(ctx context.Context, eventID string, tiers []domain.SeedTier) error
	GetAvailability(ctx context.Context, eventID string) (*domain.TicketAvailability, error)
}

type OrderSvc interface {
	Create(ctx context.Context, userID, eventID string, items []domain.ReserveRequest) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	Pay(ctx context.Context, orderID string, method domain.PaymentMethod) (*domain.Order, error)
}

type WalletSvc interface {
	EnsureWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	Credit(ctx context.Context, userID string, amountCents int64, description string) (int64, error)
	ListTransactions(ctx context.Context, userID string) ([]*domain.Transaction, error)
	GetSavings(ctx context.Context, userID string) (*domain.SavingsTarget, error)
	SetSavingsGoal(ctx context.Context, userID string, goalCents int64) error
	AddSavings(ctx context.Context, userID string, amountCents int64) error
}

type MerchSvc interface {
	CreateProduct(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, eventID string) ([]*domain.Product, error)
	Stats(ctx context.Context) (*domain.MerchStats, error)
	Create(ctx context.Context, userID, eventID string, items []domain.StockRequest) (*domain.MerchOrder, error)
	Get(ctx context.Context, orderID string) (*domain.MerchOrder, error)
	Pay(ctx context.Context, orderID string, method domain.PaymentMethod) (*domain.MerchOrder, error)
}

type Handler struct {
	inventoryService InventorySvc
	orderService     OrderSvc
	walletService    WalletSvc
	merchService     MerchSvc
}

func NewHandler(inventoryService InventorySvc, orderService OrderSvc, walletService WalletSvc, merchService MerchSvc) *Handler {
	return &Handler{
		inventoryService: inventoryService,
		orderService:     orderService,
		walletService:    walletService,
		merchService:     merchService,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotSeeded),
		errors.Is(err, domain.ErrTierNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrMerchOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientAvailability),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrOrderNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
