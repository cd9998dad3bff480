package loanmock

import (
	"context"

	"gorm.io/gorm"

	domain "perfectbank-backend/internal/domain/loan"
)

// Repo is a function-backed mock satisfying domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, l *domain.Loan) error
	SaveFn              func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn       func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetActiveByUserIDFn func(ctx context.Context, userID string) (*domain.Loan, error)
	ListByUserIDFn      func(ctx context.Context, userID string) ([]domain.Loan, error)
	ListByStatusesFn    func(ctx context.Context, statuses []domain.Status) ([]domain.Loan, error)
	ListFn              func(ctx context.Context) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetActiveByUserID(ctx context.Context, userID string) (*domain.Loan, error) {
	if m.GetActiveByUserIDFn != nil {
		return m.GetActiveByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Loan, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListByStatuses(ctx context.Context, statuses []domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusesFn != nil {
		return m.ListByStatusesFn(ctx, statuses)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
