package sms

import "context"

type Repository interface {
	Create(ctx context.Context, l *Log) error
	CreateBatch(ctx context.Context, ls []Log) error
	// ListByLoanID returns a loan's messages, oldest first.
	ListByLoanID(ctx context.Context, loanID string) ([]Log, error)
	// List returns every message, newest first.
	List(ctx context.Context) ([]Log, error)
}
