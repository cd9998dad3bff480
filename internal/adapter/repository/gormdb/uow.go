package gormdb

import (
	"context"

	"gorm.io/gorm"

	"perfectbank-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Users:      &UserRepository{db: tx},
			Loans:      &LoanRepository{db: tx},
			Repayments: &RepaymentRepository{db: tx},
			SmsLogs:    &SmsLogRepository{db: tx},
		}
		return fn(r)
	})
}
