package services

import (
	"context"
	"fmt"

	"finman/internal/core"
)

// ReportService computes period summaries from the ledger. Pure read; it
// never writes.
type ReportService struct {
	store TransactionStore
}

func NewReportService(store TransactionStore) *ReportService {
	return &ReportService{store: store}
}

// Generate aggregates the user's transactions matching the period filter.
// The filter is a literal date prefix ("2024" or "2024-11"); one that
// matches nothing yields an all-zero report rather than an error.
func (s *ReportService) Generate(ctx context.Context, userID int64, filter string) (core.Report, error) {
	txs, err := s.store.ListTransactionsByPeriod(ctx, userID, filter)
	if err != nil {
		return core.Report{}, fmt.Errorf("list transactions for report: %w", err)
	}
	return core.Aggregate(filter, txs), nil
}
