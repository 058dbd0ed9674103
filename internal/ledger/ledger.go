package ledger

//go:generate go run go.uber.org/mock/mockgen@latest -source=ledger.go -destination=mocks_test.go -package=ledger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("credit amount must be positive")

const referencePrefix = "COMM-"

// LedgerStore is the persistence the ledger needs.
type LedgerStore interface {
	CreditPendingBalance(ctx context.Context, params store.CreditPendingParams) (store.Balance, store.EarningsTransaction, error)
}

// Ledger credits affiliate commissions to the pending bucket. It never moves money between
// buckets or decreases a balance.
type Ledger struct {
	store  LedgerStore
	logger *observability.Logger
	random io.Reader
}

func New(store LedgerStore, logger *observability.Logger) *Ledger {
	return &Ledger{store: store, logger: logger, random: rand.Reader}
}

// Credit adds amount to the affiliate's pending balance and records a pending earnings transaction.
func (l *Ledger) Credit(ctx context.Context, affiliateID uuid.UUID, amount decimal.Decimal) (store.Balance, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "amount", Value: amount.StringFixed(2)},
	)

	if !amount.IsPositive() {
		return store.Balance{}, ErrInvalidAmount
	}

	reference, err := l.reference()
	if err != nil {
		l.logger.Error(ctx, "failed to generate transaction reference", err)
		return store.Balance{}, fmt.Errorf("failed to generate transaction reference: %w", err)
	}

	balance, txn, err := l.store.CreditPendingBalance(ctx, store.CreditPendingParams{
		UserID:      affiliateID,
		Amount:      amount,
		ReferenceID: reference,
		Description: fmt.Sprintf("Commission of %s", amount.StringFixed(2)),
	})
	if err != nil {
		l.logger.Error(ctx, "failed to credit commission", err)
		return store.Balance{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "reference_id", Value: txn.ReferenceID})
	l.logger.Info(ctx, "commission credited to pending balance")
	return balance, nil
}

// reference returns COMM- followed by 6 uppercase hex characters.
func (l *Ledger) reference() (string, error) {
	buf := make([]byte, 3)
	if _, err := io.ReadFull(l.random, buf); err != nil {
		return "", err
	}
	return referencePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
