package uow

import (
	"context"

	"perfectbank-backend/internal/domain/loan"
	"perfectbank-backend/internal/domain/repayment"
	"perfectbank-backend/internal/domain/sms"
	"perfectbank-backend/internal/domain/user"
)

type Repos struct {
	Users      user.Repository
	Loans      loan.Repository
	Repayments repayment.Repository
	SmsLogs    sms.Repository
}

// UnitOfWork runs fn with every repository bound to one transaction, so a
// loan review writes the loan, its schedule and its notifications atomically.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
