package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nextswitchio/guestly/internal/domain"
)

type userWallet struct {
	mu      sync.Mutex
	balance int64
	txns    []*domain.Transaction
}

type WalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*userWallet
}

func NewWalletRepo() *WalletRepository {
	return &WalletRepository{
		wallets: make(map[string]*userWallet),
	}
}

func (r *WalletRepository) wallet(userID string) *userWallet {
	r.mu.RLock()
	w, ok := r.wallets[userID]
	r.mu.RUnlock()
	if ok {
		return w
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok = r.wallets[userID]; ok {
		return w
	}
	w = &userWallet{}
	r.wallets[userID] = w
	return w
}

func (r *WalletRepository) Ensure(_ context.Context, userID string) (*domain.Wallet, error) {
	w := r.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()
	return &domain.Wallet{UserID: userID, BalanceCents: w.balance}, nil
}

func (r *WalletRepository) Credit(_ context.Context, userID string, amountCents int64, description string) (int64, error) {
	w := r.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()

	w.balance += amountCents
	w.txns = append(w.txns, &domain.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		AmountCents: amountCents,
		Direction:   domain.DirectionCredit,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})

	return w.balance, nil
}

// Debit checks and mutates under the per-user lock, so a concurrent
// credit or debit on the same wallet can never interleave with the check.
func (r *WalletRepository) Debit(_ context.Context, userID string, amountCents int64, description string) (int64, error) {
	w := r.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.balance < amountCents {
		return 0, domain.ErrInsufficientFunds
	}

	w.balance -= amountCents
	w.txns = append(w.txns, &domain.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		AmountCents: amountCents,
		Direction:   domain.DirectionDebit,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})

	return w.balance, nil
}

func (r *WalletRepository) ListTransactions(_ context.Context, userID string) ([]*domain.Transaction, error) {
	w := r.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()

	// append order is chronological; return most recent first
	res := make([]*domain.Transaction, len(w.txns))
	for i, t := range w.txns {
		c := *t
		res[len(w.txns)-1-i] = &c
	}

	return res, nil
}

type SavingsRepository struct {
	mu      sync.Mutex
	targets map[string]*domain.SavingsTarget
}

func NewSavingsRepo() *SavingsRepository {
	return &SavingsRepository{
		targets: make(map[string]*domain.SavingsTarget),
	}
}

func (r *SavingsRepository) Get(_ context.Context, userID string) (*domain.SavingsTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.targets[userID]; ok {
		c := *t
		return &c, nil
	}
	return &domain.SavingsTarget{UserID: userID}, nil
}

func (r *SavingsRepository) SetGoal(_ context.Context, userID string, goalCents int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.targets[userID]
	if !ok {
		t = &domain.SavingsTarget{UserID: userID}
		r.targets[userID] = t
	}
	t.GoalCents = goalCents

	return nil
}

func (r *SavingsRepository) Add(_ context.Context, userID string, amountCents int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.targets[userID]
	if !ok {
		t = &domain.SavingsTarget{UserID: userID}
		r.targets[userID] = t
	}
	t.ProgressCents += amountCents

	return nil
}
