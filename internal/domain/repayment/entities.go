package repayment

import "time"

type Status string

const (
	StatusPaid     Status = "PAID"
	StatusUpcoming Status = "UPCOMING"
	StatusOverdue  Status = "OVERDUE"
)

// Repayment is one installment of a loan's amortization plan. The whole
// plan is written once at approval time; rows are never updated afterwards.
type Repayment struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RepaymentID string    `gorm:"column:repayment_id;size:32;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	LoanID      string    `gorm:"column:loan_id;size:32;index:idx_repayments_loan" json:"loan_id"`
	Installment int       `gorm:"column:installment" json:"installment"`
	Amount      float64   `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	DueDate     time.Time `gorm:"column:due_date" json:"due_date"`
	Status      Status    `gorm:"column:status;size:16" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }
