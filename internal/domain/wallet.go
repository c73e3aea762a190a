package domain

import "time"

type Wallet struct {
	UserID       string `json:"user_id"`
	BalanceCents int64  `json:"balance_cents"`
}

type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

// Transaction is an immutable ledger entry. The wallet balance must equal
// the sum of credits minus the sum of debits over these entries.
type Transaction struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	AmountCents int64                `json:"amount_cents"`
	Direction   TransactionDirection `json:"direction"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
}

type SavingsTarget struct {
	UserID        string `json:"user_id"`
	GoalCents     int64  `json:"goal_cents"`
	ProgressCents int64  `json:"progress_cents"`
}
