package gormdb

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	loanDomain "perfectbank-backend/internal/domain/loan"
	repaymentDomain "perfectbank-backend/internal/domain/repayment"
	smsDomain "perfectbank-backend/internal/domain/sms"
	userDomain "perfectbank-backend/internal/domain/user"
	"perfectbank-backend/pkg/id"
)

// openTestDB gives each test its own in-memory sqlite with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&loanDomain.Loan{},
		&repaymentDomain.Repayment{},
		&smsDomain.Log{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeUser(no uint64, name, email string) *userDomain.User {
	return &userDomain.User{
		UserID: id.NewID32(),
		UserNo: no,
		Name:   name,
		Email:  email,
		Phone:  "+2348000000000",
		Role:   userDomain.RoleBorrower,
	}
}

func makeLoan(userID, userName string, status loanDomain.Status, appliedAt time.Time) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:         id.NewID32(),
		UserID:         userID,
		UserName:       userName,
		Amount:         50_000,
		DurationMonths: 6,
		Purpose:        "working capital",
		GuarantorNos:   loanDomain.Guarantors{"PMB-00002", "PMB-00003", "PMB-00004", "PMB-00005"},
		Status:         status,
		AppliedAt:      appliedAt,
	}
}
