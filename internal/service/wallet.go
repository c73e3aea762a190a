package service

import (
	"context"
	"fmt"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type WalletService struct {
	walletRepo  ports.WalletRepo
	savingsRepo ports.SavingsRepo
	logger      logger.Logger
}

func NewWalletService(walletRepo ports.WalletRepo, savingsRepo ports.SavingsRepo, logger logger.Logger) *WalletService {
	return &WalletService{
		walletRepo:  walletRepo,
		savingsRepo: savingsRepo,
		logger:      logger,
	}
}

func (s *WalletService) EnsureWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return s.walletRepo.Ensure(ctx, userID)
}

func (s *WalletService) Credit(ctx context.Context, userID string, amountCents int64, description string) (int64, error) {
	if amountCents <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	balance, err := s.walletRepo.Credit(ctx, userID, amountCents, description)
	if err != nil {
		return 0, fmt.Errorf("credit wallet: %w", err)
	}

	s.logger.Info("wallet credited",
		logger.String("user_id", userID),
		logger.Int64("amount_cents", amountCents),
		logger.Int64("balance_cents", balance),
	)

	return balance, nil
}

// Debit checks the balance atomically with the mutation inside the
// repository, so no caller can drive a wallet negative.
func (s *WalletService) Debit(ctx context.Context, userID string, amountCents int64, description string) (int64, error) {
	if amountCents <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	balance, err := s.walletRepo.Debit(ctx, userID, amountCents, description)
	if err != nil {
		return 0, err
	}

	s.logger.Info("wallet debited",
		logger.String("user_id", userID),
		logger.Int64("amount_cents", amountCents),
		logger.Int64("balance_cents", balance),
	)

	return balance, nil
}

func (s *WalletService) ListTransactions(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	return s.walletRepo.ListTransactions(ctx, userID)
}

func (s *WalletService) GetSavings(ctx context.Context, userID string) (*domain.SavingsTarget, error) {
	return s.savingsRepo.Get(ctx, userID)
}

func (s *WalletService) SetSavingsGoal(ctx context.Context, userID string, goalCents int64) error {
	if goalCents < 0 {
		return fmt.Errorf("%w: goal must not be negative", domain.ErrValidation)
	}
	return s.savingsRepo.SetGoal(ctx, userID, goalCents)
}

func (s *WalletService) AddSavings(ctx context.Context, userID string, amountCents int64) error {
	if amountCents <= 0 {
		return domain.ErrInvalidAmount
	}
	return s.savingsRepo.Add(ctx, userID, amountCents)
}
