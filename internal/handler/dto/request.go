package dto

type SeedTierRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
}

type SeedTiersRequest struct {
	Tiers []SeedTierRequest `json:"tiers" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	Tier     string `json:"tier" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	UserID  string             `json:"user_id" binding:"required"`
	EventID string             `json:"event_id" binding:"required"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type PayRequest struct {
	Method string `json:"method" binding:"required,oneof=wallet card"`
}

type TopUpRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Description string `json:"description"`
}

type SavingsGoalRequest struct {
	GoalCents int64 `json:"goal_cents" binding:"gte=0"`
}

type AddSavingsRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}

type CreateProductRequest struct {
	EventID     string   `json:"event_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents" binding:"required,gt=0"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Sizes       []string `json:"sizes"`
}

type MerchItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Size      string `json:"size"`
}

type CreateMerchOrderRequest struct {
	UserID  string             `json:"user_id" binding:"required"`
	EventID string             `json:"event_id" binding:"required"`
	Items   []MerchItemRequest `json:"items" binding:"required,min=1,dive"`
}
