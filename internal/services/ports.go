// Package services implements the ledger's operations over a persisted
// store: registration and login, transaction writes, budget upserts, and
// period reports.
package services

import (
	"context"

	"finman/internal/core"
)

// UserStore persists credentials. GetUserByUsername returns (nil, nil) for
// an unknown username.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) error
	GetUserByUsername(ctx context.Context, username string) (*core.User, error)
}

// TransactionStore is the append-only ledger.
type TransactionStore interface {
	AppendTransaction(ctx context.Context, tx core.Transaction) (int64, error)
	ListTransactionsByPeriod(ctx context.Context, userID int64, period string) ([]core.Transaction, error)
}

// BudgetStore keeps at most one budget row per (user, category).
type BudgetStore interface {
	UpsertBudget(ctx context.Context, b core.Budget) error
}
