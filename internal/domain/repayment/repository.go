package repayment

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, rs []Repayment) error
	// ListByLoanID returns installments ordered by installment number.
	ListByLoanID(ctx context.Context, loanID string) ([]Repayment, error)
}
