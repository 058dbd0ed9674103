package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditPendingParams represents a pending commission credit
type CreditPendingParams struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	ReferenceID string
	Description string
}

const sqlUpsertPendingBalance = `
INSERT INTO balances (user_id, available, pending, paid)
VALUES ($1, 0, $2, 0)
ON CONFLICT (user_id) DO UPDATE
SET pending = balances.pending + EXCLUDED.pending,
    updated_at = NOW()
RETURNING user_id, available, pending, paid, updated_at
`

const sqlCreateEarningsTransaction = `
INSERT INTO earnings_transactions (user_id, amount, status, source, description, reference_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, amount, status, source, description, reference_id, created_at
`

// CreditPendingBalance adds amount to the pending bucket, creating the balance row when absent, and
// appends the matching earnings transaction. Both writes commit together.
func (s *Store) CreditPendingBalance(ctx context.Context, params CreditPendingParams) (Balance, EarningsTransaction, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Balance{}, EarningsTransaction{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	var balance Balance
	if err = tx.GetContext(ctx, &balance, sqlUpsertPendingBalance, params.UserID, params.Amount); err != nil {
		s.logger.Error(ctx, "failed to credit pending balance", err)
		return Balance{}, EarningsTransaction{}, fmt.Errorf("failed to credit pending balance: %w", err)
	}

	var txn EarningsTransaction
	err = tx.GetContext(ctx, &txn, sqlCreateEarningsTransaction,
		params.UserID,
		params.Amount,
		TransactionStatusPending,
		TransactionSourceCommission,
		params.Description,
		params.ReferenceID)
	if err != nil {
		s.logger.Error(ctx, "failed to create earnings transaction", err)
		return Balance{}, EarningsTransaction{}, fmt.Errorf("failed to create earnings transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Balance{}, EarningsTransaction{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return balance, txn, nil
}

const sqlGetBalance = `
SELECT user_id, available, pending, paid, updated_at
FROM balances
WHERE user_id = $1
`

// GetBalance retrieves the balance of a user
func (s *Store) GetBalance(ctx context.Context, userID uuid.UUID) (Balance, error) {
	var balance Balance
	err := s.db.GetContext(ctx, &balance, sqlGetBalance, userID)
	if err != nil {
		if isNoRows(err) {
			return Balance{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get balance", err)
		return Balance{}, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}
