package services

import (
	"context"
	"fmt"

	"finman/internal/core"
)

// BudgetService sets per-category budget ceilings. Budgets are write-only
// here: reporting does not read them back.
type BudgetService struct {
	store BudgetStore
}

func NewBudgetService(store BudgetStore) *BudgetService {
	return &BudgetService{store: store}
}

// Set upserts the budget for (user, category), replacing any prior amount.
func (s *BudgetService) Set(ctx context.Context, userID int64, category, amountStr string) (core.Budget, error) {
	amount, err := core.ParseMoney(amountStr)
	if err != nil {
		return core.Budget{}, err
	}

	b := core.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}

	if err := s.store.UpsertBudget(ctx, b); err != nil {
		return core.Budget{}, fmt.Errorf("upsert budget: %w", err)
	}
	return b, nil
}
