package services

import (
	"context"
	"fmt"
	"time"

	"finman/internal/core"
)

// LedgerService validates and appends transactions. The clock is injected
// so default dates are testable.
type LedgerService struct {
	store TransactionStore
	now   func() time.Time
}

func NewLedgerService(store TransactionStore) *LedgerService {
	return &LedgerService{store: store, now: time.Now}
}

// NewLedgerServiceWithClock builds a ledger whose default dates come from
// the given clock.
func NewLedgerServiceWithClock(store TransactionStore, now func() time.Time) *LedgerService {
	return &LedgerService{store: store, now: now}
}

// Add parses and validates the raw inputs, then persists one immutable row.
// An empty dateStr means "today". A rejected input persists nothing.
func (s *LedgerService) Add(ctx context.Context, userID int64, kindStr, category, amountStr, dateStr string) (core.Transaction, error) {
	kind, err := core.ParseKind(kindStr)
	if err != nil {
		return core.Transaction{}, err
	}

	amount, err := core.ParseMoney(amountStr)
	if err != nil {
		return core.Transaction{}, err
	}

	var date core.Date
	if dateStr == "" {
		date = core.DateOf(s.now())
	} else {
		date, err = core.ParseDate(dateStr)
		if err != nil {
			return core.Transaction{}, err
		}
	}

	tx := core.Transaction{
		UserID:   userID,
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	id, err := s.store.AppendTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("append transaction: %w", err)
	}
	tx.ID = id
	return tx, nil
}

// ListForPeriod returns the user's transactions whose date starts with the
// period prefix, in storage order.
func (s *LedgerService) ListForPeriod(ctx context.Context, userID int64, period string) ([]core.Transaction, error) {
	txs, err := s.store.ListTransactionsByPeriod(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
