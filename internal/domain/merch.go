package domain

import "time"

// Product stock is a single pool per product. Size is a display attribute
// carried through order items; it does not split the stock counter.
type Product struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Sold        int       `json:"sold"`
	Sizes       []string  `json:"sizes,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductInput struct {
	EventID     string
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Stock       int
	Sizes       []string
}

type StockRequest struct {
	ProductID string
	Quantity  int
	Size      string
}

type ReservedStock struct {
	ProductID      string
	Name           string
	Quantity       int
	UnitPriceCents int64
	Size           string
}

type MerchOrderItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Size           string `json:"size,omitempty"`
}

type MerchOrder struct {
	ID         string           `json:"id"`
	EventID    string           `json:"event_id"`
	UserID     string           `json:"user_id"`
	Items      []MerchOrderItem `json:"items"`
	TotalCents int64            `json:"total_cents"`
	Status     OrderStatus      `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type MerchStats struct {
	TotalProducts int   `json:"total_products"`
	UnitsSold     int   `json:"units_sold"`
	RevenueCents  int64 `json:"revenue_cents"`
}
