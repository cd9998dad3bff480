package smsmock

import (
	"context"

	domain "perfectbank-backend/internal/domain/sms"
)

// Repo is a function-backed mock satisfying domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, l *domain.Log) error
	CreateBatchFn  func(ctx context.Context, ls []domain.Log) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Log, error)
	ListFn         func(ctx context.Context) ([]domain.Log, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Log) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) CreateBatch(ctx context.Context, ls []domain.Log) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ls)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Log, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Log, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
