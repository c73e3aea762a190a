package ports

import (
	"context"

	"github.com/nextswitchio/guestly/internal/domain"
)

type WalletRepo interface {
	Ensure(ctx context.Context, userID string) (*domain.Wallet, error)
	Credit(ctx context.Context, userID string, amountCents int64, description string) (int64, error)
	Debit(ctx context.Context, userID string, amountCents int64, description string) (int64, error)
	ListTransactions(ctx context.Context, userID string) ([]*domain.Transaction, error)
}

type SavingsRepo interface {
	Get(ctx context.Context, userID string) (*domain.SavingsTarget, error)
	SetGoal(ctx context.Context, userID string, goalCents int64) error
	Add(ctx context.Context, userID string, amountCents int64) error
}
