package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetActiveByUserID returns the borrower's newest PENDING or APPROVED
	// loan, gorm.ErrRecordNotFound when there is none.
	GetActiveByUserID(ctx context.Context, userID string) (*Loan, error)
	// ListByUserID returns the borrower's loans, newest application first.
	ListByUserID(ctx context.Context, userID string) ([]Loan, error)
	ListByStatuses(ctx context.Context, statuses []Status) ([]Loan, error)
	List(ctx context.Context) ([]Loan, error)
}
