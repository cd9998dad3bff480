package sms

import "time"

// NoLoan marks bulk messages for recipients without any loan on file.
const NoLoan = "N/A"

type Status string

const (
	StatusSent      Status = "SENT"
	StatusFailed    Status = "FAILED"
	StatusScheduled Status = "SCHEDULED"
)

// Log is one outbound SMS record. SCHEDULED entries carry their intended
// send time in Date; no background process transitions them to SENT.
type Log struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	SmsID  string `gorm:"column:sms_id;size:32;uniqueIndex:ux_sms_logs_sms_id" json:"sms_id"`
	LoanID string `gorm:"column:loan_id;size:32;index:idx_sms_logs_loan" json:"loan_id"`
	// UserName reflects the recipient's display name at creation time; it
	// is not kept in sync with later profile edits.
	UserName  string    `gorm:"column:user_name;size:255" json:"user_name"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	Date      time.Time `gorm:"column:date" json:"date"`
	Status    Status    `gorm:"column:status;size:16" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Log) TableName() string { return "sms_logs" }
