package repayment

import (
	"time"

	"perfectbank-backend/pkg/id"
)

// BuildSchedule derives the full installment plan for a loan: durationMonths
// installments of amount/durationMonths each, installment i due i months
// after approval (1-indexed). The last installment is not adjusted to absorb
// rounding remainder, so the plan sums to the amount only up to float
// precision.
//
// A nil approvedAt yields an empty plan. allPaid forces every installment to
// PAID and exists for seeding historical fixtures. Otherwise status is
// derived from now: future due dates are UPCOMING; past due dates are PAID,
// except every fourth installment after the first, which is marked OVERDUE.
// That distribution is a stand-in until real payment tracking lands.
func BuildSchedule(loanID string, amount float64, durationMonths int, approvedAt *time.Time, now time.Time, allPaid bool) []Repayment {
	if approvedAt == nil || durationMonths <= 0 {
		return nil
	}

	monthly := amount / float64(durationMonths)
	plan := make([]Repayment, 0, durationMonths)
	for i := 0; i < durationMonths; i++ {
		due := approvedAt.AddDate(0, i+1, 0)

		status := StatusUpcoming
		switch {
		case allPaid:
			status = StatusPaid
		case due.Before(now):
			if i%4 == 0 && i > 0 {
				status = StatusOverdue
			} else {
				status = StatusPaid
			}
		}

		plan = append(plan, Repayment{
			RepaymentID: id.NewID32(),
			LoanID:      loanID,
			Installment: i + 1,
			Amount:      monthly,
			DueDate:     due,
			Status:      status,
		})
	}
	return plan
}
