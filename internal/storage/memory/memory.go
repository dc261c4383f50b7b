// Package memory is an in-memory stand-in for the SQLite repository,
// used by service tests.
package memory

import (
	"context"
	"sync"

	"finman/internal/core"
)

type Store struct {
	mu      sync.Mutex
	users   []core.User
	txs     []core.Transaction
	budgets []core.Budget
}

func New() *Store {
	return &Store{}
}

func (s *Store) CreateUser(_ context.Context, username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return core.ErrDuplicateUsername
		}
	}
	s.users = append(s.users, core.User{
		ID:           int64(len(s.users) + 1),
		Username:     username,
		PasswordHash: passwordHash,
	})
	return nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) AppendTransaction(_ context.Context, tx core.Transaction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = int64(len(s.txs) + 1)
	s.txs = append(s.txs, tx)
	return tx.ID, nil
}

func (s *Store) ListTransactionsByPeriod(_ context.Context, userID int64, period string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Transaction
	for _, tx := range s.txs {
		if tx.UserID == userID && tx.Date.MatchesPeriod(period) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *Store) UpsertBudget(_ context.Context, b core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.budgets {
		if existing.UserID == b.UserID && existing.Category == b.Category {
			b.ID = existing.ID
			s.budgets[i] = b
			return nil
		}
	}
	b.ID = int64(len(s.budgets) + 1)
	s.budgets = append(s.budgets, b)
	return nil
}

func (s *Store) ListBudgets(_ context.Context, userID int64) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Budget
	for _, b := range s.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
