package gormdb

import (
	"context"

	"gorm.io/gorm"

	smsDomain "perfectbank-backend/internal/domain/sms"
)

type SmsLogRepository struct{ db *gorm.DB }

func NewSmsLogRepository(db *gorm.DB) *SmsLogRepository { return &SmsLogRepository{db: db} }

func (r *SmsLogRepository) Create(ctx context.Context, l *smsDomain.Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *SmsLogRepository) CreateBatch(ctx context.Context, ls []smsDomain.Log) error {
	if len(ls) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ls).Error
}

func (r *SmsLogRepository) ListByLoanID(ctx context.Context, loanID string) ([]smsDomain.Log, error) {
	var out []smsDomain.Log
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *SmsLogRepository) List(ctx context.Context) ([]smsDomain.Log, error) {
	var out []smsDomain.Log
	res := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&out)
	return out, res.Error
}
