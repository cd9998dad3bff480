package gormdb

import (
	"context"

	"gorm.io/gorm"

	repaymentDomain "perfectbank-backend/internal/domain/repayment"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) CreateBatch(ctx context.Context, rs []repaymentDomain.Repayment) error {
	if len(rs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rs).Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("installment ASC").
		Find(&out)
	return out, res.Error
}
