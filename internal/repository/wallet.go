package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type WalletRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWalletRepo(db *dbpg.DB) *WalletRepository {
	return &WalletRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WalletRepository) Ensure(ctx context.Context, userID string) (*domain.Wallet, error) {
	insert := `INSERT INTO wallets (user_id, balance_cents, created_at)
			   VALUES ($1, 0, $2)
			   ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, insert, userID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("ensure wallet: %w", err)
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT user_id, balance_cents FROM wallets WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	var w domain.Wallet
	if err = row.Scan(&w.UserID, &w.BalanceCents); err != nil {
		return nil, fmt.Errorf("scan wallet: %w", err)
	}

	return &w, nil
}

// Credit appends a credit transaction and increments the balance in one
// transaction, keeping balance == sum(credits) - sum(debits) at all times.
func (r *WalletRepository) Credit(ctx context.Context, userID string, amountCents int64, description string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO wallets (user_id, balance_cents, created_at)
		 VALUES ($1, 0, $2)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, time.Now().UTC(),
	); err != nil {
		return 0, fmt.Errorf("ensure wallet: %w", err)
	}

	var balance int64
	if err = tx.QueryRowContext(ctx,
		`UPDATE wallets SET balance_cents = balance_cents + $2 WHERE user_id = $1 RETURNING balance_cents`,
		userID, amountCents,
	).Scan(&balance); err != nil {
		return 0, fmt.Errorf("credit balance: %w", err)
	}

	if err = r.insertTransaction(ctx, tx, userID, amountCents, domain.DirectionCredit, description); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit credit: %w", err)
	}

	return balance, nil
}

// Debit locks the wallet row, checks the balance, and only then mutates.
// The check is atomic with the mutation; a failed debit leaves both the
// balance and the transaction log untouched.
func (r *WalletRepository) Debit(ctx context.Context, userID string, amountCents int64, description string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var balance int64
	err = tx.QueryRowContext(ctx,
		`SELECT balance_cents FROM wallets WHERE user_id = $1 FOR UPDATE`, userID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("lock wallet: %w", err)
	}

	if balance < amountCents {
		return 0, domain.ErrInsufficientFunds
	}

	balance -= amountCents
	if _, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance_cents = $2 WHERE user_id = $1`, userID, balance,
	); err != nil {
		return 0, fmt.Errorf("debit balance: %w", err)
	}

	if err = r.insertTransaction(ctx, tx, userID, amountCents, domain.DirectionDebit, description); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit debit: %w", err)
	}

	return balance, nil
}

func (r *WalletRepository) insertTransaction(
	ctx context.Context,
	tx *sql.Tx,
	userID string,
	amountCents int64,
	direction domain.TransactionDirection,
	description string,
) error {
	query := `INSERT INTO wallet_transactions (id, user_id, amount_cents, direction, description, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(
		ctx, query, uuid.New().String(), userID,
		amountCents, direction, description, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *WalletRepository) ListTransactions(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	query := `SELECT id, user_id, amount_cents, direction, description, created_at
			  FROM wallet_transactions
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err = rows.Scan(&t.ID, &t.UserID, &t.AmountCents, &t.Direction, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

type SavingsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSavingsRepo(db *dbpg.DB) *SavingsRepository {
	return &SavingsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SavingsRepository) Get(ctx context.Context, userID string) (*domain.SavingsTarget, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT user_id, goal_cents, progress_cents FROM savings_targets WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("get savings: %w", err)
	}

	var t domain.SavingsTarget
	if err = row.Scan(&t.UserID, &t.GoalCents, &t.ProgressCents); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.SavingsTarget{UserID: userID}, nil
		}
		return nil, fmt.Errorf("scan savings: %w", err)
	}

	return &t, nil
}

func (r *SavingsRepository) SetGoal(ctx context.Context, userID string, goalCents int64) error {
	query := `INSERT INTO savings_targets (user_id, goal_cents, progress_cents)
			  VALUES ($1, $2, 0)
			  ON CONFLICT (user_id) DO UPDATE SET goal_cents = EXCLUDED.goal_cents`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, goalCents); err != nil {
		return fmt.Errorf("set savings goal: %w", err)
	}
	return nil
}

func (r *SavingsRepository) Add(ctx context.Context, userID string, amountCents int64) error {
	query := `INSERT INTO savings_targets (user_id, goal_cents, progress_cents)
			  VALUES ($1, 0, $2)
			  ON CONFLICT (user_id) DO UPDATE
			  SET progress_cents = savings_targets.progress_cents + EXCLUDED.progress_cents`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, amountCents); err != nil {
		return fmt.Errorf("add savings: %w", err)
	}
	return nil
}
