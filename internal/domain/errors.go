package domain

import "errors"

var (
	ErrEventNotSeeded     = errors.New("event has no seeded ticket tiers")
	ErrTierNotFound       = errors.New("ticket tier not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrMerchOrderNotFound = errors.New("merch order not found")
)

var (
	ErrInsufficientAvailability = errors.New("insufficient ticket availability")
	ErrInsufficientStock        = errors.New("insufficient product stock")
	ErrInsufficientFunds        = errors.New("insufficient wallet funds")
	ErrOrderNotPending          = errors.New("order is not in pending status")
)

var (
	ErrEmptyOrder    = errors.New("order has no items")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrValidation    = errors.New("validation error")
)
