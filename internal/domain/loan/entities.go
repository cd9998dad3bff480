package loan

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether the loan still occupies the borrower's single
// active-loan slot.
func (s Status) Active() bool { return s == StatusPending || s == StatusApproved }

var (
	ErrNotFound          = errors.New("loan not found")
	ErrActiveLoanExists  = errors.New("borrower already has an active loan")
	ErrInvalidGuarantor  = errors.New("one or more guarantor IDs are invalid")
	ErrInvalidTransition = errors.New("loan is not pending review")
	ErrInvalidInput      = errors.New("invalid loan input")
)

// Guarantors holds the four guarantor member codes, stored as a JSON column.
type Guarantors []string

func (g Guarantors) Value() (driver.Value, error) { return json.Marshal(g) }

func (g *Guarantors) Scan(v any) error {
	switch b := v.(type) {
	case nil:
		*g = nil
		return nil
	case []byte:
		return json.Unmarshal(b, g)
	case string:
		return json.Unmarshal([]byte(b), g)
	}
	return fmt.Errorf("guarantors: unsupported column type %T", v)
}

type Loan struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LoanID string `gorm:"column:loan_id;size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	UserID string `gorm:"column:user_id;size:32;index:idx_loans_user" json:"user_id"`
	// UserName reflects the borrower's display name at application time; it
	// is not kept in sync with later profile edits.
	UserName       string         `gorm:"column:user_name;size:255" json:"user_name"`
	Amount         float64        `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	DurationMonths int            `gorm:"column:duration_months" json:"duration"`
	Purpose        string         `gorm:"column:purpose;type:text" json:"purpose"`
	GuarantorNos   Guarantors     `gorm:"column:guarantor_nos;type:text" json:"guarantor_ids"`
	Status         Status         `gorm:"column:status;size:16;default:'PENDING'" json:"status"`
	AppliedAt      time.Time      `gorm:"column:applied_at" json:"application_date"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at" json:"approval_date,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
