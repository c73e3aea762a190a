package domain

// TicketTier is the remaining capacity of one ticket category of an event.
// Prices are carried in minor units (cents) everywhere.
type TicketTier struct {
	EventID    string `json:"event_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Available  int    `json:"available"`
}

type TicketAvailability struct {
	EventID string       `json:"event_id"`
	Tiers   []TicketTier `json:"tiers"`
}

type SeedTier struct {
	Name       string
	PriceCents int64
	Capacity   int
}

type ReserveRequest struct {
	Tier     string
	Quantity int
}

// ReservedItem fixes the unit price observed at reservation time. Later
// price changes must not affect outstanding orders.
type ReservedItem struct {
	Tier           string
	Quantity       int
	UnitPriceCents int64
}
