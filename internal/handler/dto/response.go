package dto

import (
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
)

type TierResponse struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Available  int    `json:"available"`
}

type AvailabilityResponse struct {
	EventID string         `json:"event_id"`
	Tiers   []TierResponse `json:"tiers"`
}

type OrderItemResponse struct {
	Tier           string `json:"tier"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	EventID    string              `json:"event_id"`
	UserID     string              `json:"user_id"`
	Items      []OrderItemResponse `json:"items"`
	TotalCents int64               `json:"total_cents"`
	Status     string              `json:"status"`
	CreatedAt  string              `json:"created_at"`
}

type WalletResponse struct {
	UserID       string `json:"user_id"`
	BalanceCents int64  `json:"balance_cents"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Direction   string `json:"direction"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type SavingsResponse struct {
	GoalCents     int64 `json:"goal_cents"`
	ProgressCents int64 `json:"progress_cents"`
}

type ProductResponse struct {
	ID          string   `json:"id"`
	EventID     string   `json:"event_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Sold        int      `json:"sold"`
	Sizes       []string `json:"sizes,omitempty"`
}

type MerchItemResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Size           string `json:"size,omitempty"`
}

type MerchOrderResponse struct {
	ID         string              `json:"id"`
	EventID    string              `json:"event_id"`
	UserID     string              `json:"user_id"`
	Items      []MerchItemResponse `json:"items"`
	TotalCents int64               `json:"total_cents"`
	Status     string              `json:"status"`
	CreatedAt  string              `json:"created_at"`
}

type MerchStatsResponse struct {
	TotalProducts int   `json:"total_products"`
	UnitsSold     int   `json:"units_sold"`
	RevenueCents  int64 `json:"revenue_cents"`
}

type BalanceResponse struct {
	BalanceCents int64 `json:"balance_cents"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAvailabilityResponse(a *domain.TicketAvailability) AvailabilityResponse {
	tiers := make([]TierResponse, 0, len(a.Tiers))
	for _, t := range a.Tiers {
		tiers = append(tiers, TierResponse{
			Name:       t.Name,
			PriceCents: t.PriceCents,
			Available:  t.Available,
		})
	}
	return AvailabilityResponse{EventID: a.EventID, Tiers: tiers}
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse(it))
	}
	return OrderResponse{
		ID:         o.ID,
		EventID:    o.EventID,
		UserID:     o.UserID,
		Items:      items,
		TotalCents: o.TotalCents,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}

func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{UserID: w.UserID, BalanceCents: w.BalanceCents}
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		AmountCents: t.AmountCents,
		Direction:   string(t.Direction),
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func ToSavingsResponse(s *domain.SavingsTarget) SavingsResponse {
	return SavingsResponse{GoalCents: s.GoalCents, ProgressCents: s.ProgressCents}
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		EventID:     p.EventID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Category:    p.Category,
		Stock:       p.Stock,
		Sold:        p.Sold,
		Sizes:       p.Sizes,
	}
}

func ToMerchOrderResponse(o *domain.MerchOrder) MerchOrderResponse {
	items := make([]MerchItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, MerchItemResponse(it))
	}
	return MerchOrderResponse{
		ID:         o.ID,
		EventID:    o.EventID,
		UserID:     o.UserID,
		Items:      items,
		TotalCents: o.TotalCents,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}

func ToMerchStatsResponse(s *domain.MerchStats) MerchStatsResponse {
	return MerchStatsResponse{
		TotalProducts: s.TotalProducts,
		UnitsSold:     s.UnitsSold,
		RevenueCents:  s.RevenueCents,
	}
}
