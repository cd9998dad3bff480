package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perfectbank-backend/internal/domain/loan"
	"perfectbank-backend/internal/domain/repayment"
	"perfectbank-backend/internal/domain/sms"
	"perfectbank-backend/internal/domain/user"
	"perfectbank-backend/pkg/id"
)

// Seed loads the demo dataset: a handful of members across all three roles
// plus loans in every lifecycle state, so the app is browsable immediately
// after first boot. It is a no-op once any user row exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&user.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []user.User{
		{UserID: id.NewID32(), UserNo: 1, Name: "Adewale Johnson", Email: "adewale.johnson@perfectbank.com", Phone: "+2348031234567", BVN: "22123456789", NIN: "90123456789", Role: user.RoleBorrower, PasswordHash: string(hash)},
		{UserID: id.NewID32(), UserNo: 2, Name: "Chiamaka Okafor", Email: "chiamaka.okafor@perfectbank.com", Phone: "+2348062345678", BVN: "22234567890", NIN: "90234567890", Role: user.RoleBorrower, PasswordHash: string(hash)},
		{UserID: id.NewID32(), UserNo: 3, Name: "Ibrahim Musa", Email: "ibrahim.musa@perfectbank.com", Phone: "+2348093456789", BVN: "22345678901", NIN: "90345678901", Role: user.RoleBorrower, PasswordHash: string(hash)},
		{UserID: id.NewID32(), UserNo: 4, Name: "Ngozi Eze", Email: "ngozi.eze@perfectbank.com", Phone: "+2348054567890", BVN: "22456789012", NIN: "90456789012", Role: user.RoleBorrower, PasswordHash: string(hash)},
		{UserID: id.NewID32(), UserNo: 5, Name: "Bisi Adebayo", Email: "bisi.adebayo@perfectbank.com", Phone: "+2348025678901", BVN: "22567890123", NIN: "90567890123", Role: user.RoleBorrower, PasswordHash: string(hash), IsFrozen: true},
		{UserID: id.NewID32(), UserNo: 6, Name: "Tunde Bakare", Email: "tunde.bakare@perfectbank.com", Phone: "+2348076789012", BVN: "22678901234", NIN: "90678901234", Role: user.RoleBorrower, PasswordHash: string(hash)},
		{UserID: id.NewID32(), UserNo: 7, Name: "Funke Alade", Email: "funke.alade@perfectbank.com", Phone: "+2348047890123", Role: user.RoleLoanOfficer, PasswordHash: string(hash)},
		{UserID: id.NewID32(), UserNo: 8, Name: "Emeka Nwosu", Email: "emeka.nwosu@perfectbank.com", Phone: "+2348018901234", Role: user.RoleLoanOfficer, PasswordHash: string(hash)},
		{UserID: id.NewID32(), UserNo: 9, Name: "Aisha Bello", Email: "aisha.bello@perfectbank.com", Phone: "+2348089012345", Role: user.RoleAdmin, PasswordHash: string(hash)},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		guarantors := loan.Guarantors{
			id.FormatUserNo(users[1].UserNo),
			id.FormatUserNo(users[2].UserNo),
			id.FormatUserNo(users[3].UserNo),
			id.FormatUserNo(users[5].UserNo),
		}

		approvedAt := now.AddDate(0, -2, 0)
		completedAt := now.AddDate(0, -26, 0)

		loans := []loan.Loan{
			{
				LoanID: id.NewID32(), UserID: users[0].UserID, UserName: users[0].Name,
				Amount: 50000, DurationMonths: 6, Purpose: "Restock provisions shop",
				GuarantorNos: guarantors, Status: loan.StatusApproved,
				AppliedAt: approvedAt.AddDate(0, 0, -5), ApprovedAt: &approvedAt,
			},
			{
				LoanID: id.NewID32(), UserID: users[1].UserID, UserName: users[1].Name,
				Amount: 120000, DurationMonths: 12, Purpose: "Buy a second sewing machine",
				GuarantorNos: loan.Guarantors{
					id.FormatUserNo(users[0].UserNo),
					id.FormatUserNo(users[2].UserNo),
					id.FormatUserNo(users[3].UserNo),
					id.FormatUserNo(users[5].UserNo),
				},
				Status: loan.StatusPending, AppliedAt: now.AddDate(0, 0, -2),
			},
			{
				LoanID: id.NewID32(), UserID: users[2].UserID, UserName: users[2].Name,
				Amount: 80000, DurationMonths: 10, Purpose: "Expand poultry pens",
				GuarantorNos: guarantors, Status: loan.StatusRejected,
				AppliedAt: now.AddDate(0, -1, 0),
			},
			{
				LoanID: id.NewID32(), UserID: users[3].UserID, UserName: users[3].Name,
				Amount: 250000, DurationMonths: 24, Purpose: "Open a second market stall",
				GuarantorNos: guarantors, Status: loan.StatusCompleted,
				AppliedAt: completedAt.AddDate(0, 0, -7), ApprovedAt: &completedAt,
			},
			{
				LoanID: id.NewID32(), UserID: users[5].UserID, UserName: users[5].Name,
				Amount: 30000, DurationMonths: 3, Purpose: "School fees bridge",
				GuarantorNos: guarantors, Status: loan.StatusPending,
				AppliedAt: now.AddDate(0, 0, -1),
			},
		}
		if err := tx.Create(&loans).Error; err != nil {
			return err
		}

		var plans []repayment.Repayment
		plans = append(plans, repayment.BuildSchedule(loans[0].LoanID, loans[0].Amount, loans[0].DurationMonths, loans[0].ApprovedAt, now, false)...)
		plans = append(plans, repayment.BuildSchedule(loans[3].LoanID, loans[3].Amount, loans[3].DurationMonths, loans[3].ApprovedAt, now, true)...)
		if err := tx.Create(&plans).Error; err != nil {
			return err
		}

		// Reminder text matches what loan review generates at approval time.
		reminderDue := approvedAt.AddDate(0, 3, 0)
		reminder := fmt.Sprintf("Hi %s, your payment of ₦%.2f is due on %s.",
			users[0].Name, loans[0].Amount/float64(loans[0].DurationMonths), reminderDue.Format("02 Jan 2006"))

		logs := []sms.Log{
			{SmsID: id.NewID32(), LoanID: loans[0].LoanID, UserName: users[0].Name, Message: "Your loan of ₦50,000 has been approved.", Date: approvedAt, Status: sms.StatusSent},
			{SmsID: id.NewID32(), LoanID: loans[0].LoanID, UserName: users[0].Name, Message: reminder, Date: reminderDue.AddDate(0, 0, -3), Status: sms.StatusScheduled},
			{SmsID: id.NewID32(), LoanID: loans[2].LoanID, UserName: users[2].Name, Message: "Your loan of ₦80,000 has been rejected.", Date: now.AddDate(0, 0, -20), Status: sms.StatusSent},
		}
		if err := tx.Create(&logs).Error; err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"users": len(users),
			"loans": len(loans),
		}).Info("seed: demo data loaded")
		return nil
	})
}
