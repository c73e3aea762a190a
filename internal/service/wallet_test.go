package service

import (
	"context"
	"testing"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWalletService(t *testing.T) (*WalletService, *mocks.MockWalletRepo, *mocks.MockSavingsRepo) {
	walletRepo := mocks.NewMockWalletRepo(t)
	savingsRepo := mocks.NewMockSavingsRepo(t)
	log := newTestLogger(t)

	return NewWalletService(walletRepo, savingsRepo, log), walletRepo, savingsRepo
}

func TestWalletService_Credit(t *testing.T) {
	svc, walletRepo, _ := newWalletService(t)

	walletRepo.EXPECT().Credit(mock.Anything, "u1", int64(10000), "Wallet top up").
		Return(int64(10000), nil)

	balance, err := svc.Credit(context.Background(), "u1", 10000, "Wallet top up")

	require.NoError(t, err)
	assert.Equal(t, int64(10000), balance)
}

func TestWalletService_Credit_InvalidAmount(t *testing.T) {
	svc, _, _ := newWalletService(t)

	_, err := svc.Credit(context.Background(), "u1", 0, "nothing")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Credit(context.Background(), "u1", -500, "negative")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestWalletService_Debit(t *testing.T) {
	svc, walletRepo, _ := newWalletService(t)

	walletRepo.EXPECT().Debit(mock.Anything, "u1", int64(4000), "Order o1 wallet payment").
		Return(int64(6000), nil)

	balance, err := svc.Debit(context.Background(), "u1", 4000, "Order o1 wallet payment")

	require.NoError(t, err)
	assert.Equal(t, int64(6000), balance)
}

func TestWalletService_Debit_InsufficientFunds(t *testing.T) {
	svc, walletRepo, _ := newWalletService(t)

	walletRepo.EXPECT().Debit(mock.Anything, "u1", int64(4000), mock.Anything).
		Return(int64(0), domain.ErrInsufficientFunds)

	_, err := svc.Debit(context.Background(), "u1", 4000, "too much")

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestWalletService_Debit_InvalidAmount(t *testing.T) {
	svc, _, _ := newWalletService(t)

	_, err := svc.Debit(context.Background(), "u1", 0, "nothing")

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestWalletService_EnsureWallet_RequiresUser(t *testing.T) {
	svc, _, _ := newWalletService(t)

	_, err := svc.EnsureWallet(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWalletService_SetSavingsGoal(t *testing.T) {
	svc, _, savingsRepo := newWalletService(t)

	savingsRepo.EXPECT().SetGoal(mock.Anything, "u1", int64(50000)).Return(nil)

	err := svc.SetSavingsGoal(context.Background(), "u1", 50000)

	require.NoError(t, err)
}

func TestWalletService_SetSavingsGoal_Negative(t *testing.T) {
	svc, _, _ := newWalletService(t)

	err := svc.SetSavingsGoal(context.Background(), "u1", -1)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWalletService_AddSavings(t *testing.T) {
	svc, _, savingsRepo := newWalletService(t)

	savingsRepo.EXPECT().Add(mock.Anything, "u1", int64(2500)).Return(nil)

	err := svc.AddSavings(context.Background(), "u1", 2500)

	require.NoError(t, err)
}

func TestWalletService_AddSavings_InvalidAmount(t *testing.T) {
	svc, _, _ := newWalletService(t)

	err := svc.AddSavings(context.Background(), "u1", 0)

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
