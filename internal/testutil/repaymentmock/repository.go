package repaymentmock

import (
	"context"

	domain "perfectbank-backend/internal/domain/repayment"
)

// Repo is a function-backed mock satisfying domain.Repository.
type Repo struct {
	CreateBatchFn  func(ctx context.Context, rs []domain.Repayment) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Repayment, error)
}

func (m *Repo) CreateBatch(ctx context.Context, rs []domain.Repayment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rs)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}
