package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepo_Ensure_StartsAtZero(t *testing.T) {
	repo := NewWalletRepo()

	wallet, err := repo.Ensure(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.BalanceCents)
}

func TestWalletRepo_Debit_ExactBalance(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	_, err := repo.Credit(ctx, "u1", 10000, "top up")
	require.NoError(t, err)

	balance, err := repo.Debit(ctx, "u1", 10000, "order")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestWalletRepo_Debit_OneCentOver(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	_, err := repo.Credit(ctx, "u1", 10000, "top up")
	require.NoError(t, err)

	_, err = repo.Debit(ctx, "u1", 10001, "order")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	wallet, err := repo.Ensure(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), wallet.BalanceCents)
}

func TestWalletRepo_FailedDebitWritesNoTransaction(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	_, err := repo.Debit(ctx, "u1", 100, "order")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	txns, err := repo.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestWalletRepo_Transactions_MostRecentFirst(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	_, err := repo.Credit(ctx, "u1", 10000, "top up")
	require.NoError(t, err)
	_, err = repo.Debit(ctx, "u1", 4000, "order")
	require.NoError(t, err)

	txns, err := repo.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, domain.DirectionDebit, txns[0].Direction)
	assert.Equal(t, domain.DirectionCredit, txns[1].Direction)
}

// Concurrent debits against one wallet must never drive it negative, and
// the transaction log must reconcile with the final balance.
func TestWalletRepo_ConcurrentDebits_NeverNegative(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	_, err := repo.Credit(ctx, "u1", 1000, "top up")
	require.NoError(t, err)

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Debit(ctx, "u1", 100, "concurrent order")
		}()
	}
	wg.Wait()

	wallet, err := repo.Ensure(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.BalanceCents)

	txns, err := repo.ListTransactions(ctx, "u1")
	require.NoError(t, err)

	var ledger int64
	for _, tx := range txns {
		switch tx.Direction {
		case domain.DirectionCredit:
			ledger += tx.AmountCents
		case domain.DirectionDebit:
			ledger -= tx.AmountCents
		}
	}
	assert.Equal(t, wallet.BalanceCents, ledger)
}

func TestSavingsRepo_GoalAndProgress(t *testing.T) {
	repo := NewSavingsRepo()
	ctx := context.Background()

	target, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), target.GoalCents)

	require.NoError(t, repo.SetGoal(ctx, "u1", 50000))
	require.NoError(t, repo.Add(ctx, "u1", 2500))
	require.NoError(t, repo.Add(ctx, "u1", 2500))

	target, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), target.GoalCents)
	assert.Equal(t, int64(5000), target.ProgressCents)
}
