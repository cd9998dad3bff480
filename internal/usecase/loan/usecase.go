package loan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	domainLoan "perfectbank-backend/internal/domain/loan"
	domainRepayment "perfectbank-backend/internal/domain/repayment"
	domainSms "perfectbank-backend/internal/domain/sms"
	domainUser "perfectbank-backend/internal/domain/user"
	"perfectbank-backend/internal/domain/uow"
	"perfectbank-backend/pkg/id"
)

// reminderLeadDays is how many days before a due date the repayment
// reminder SMS is scheduled.
const reminderLeadDays = 3

type Usecase struct {
	users      domainUser.Repository
	loans      domainLoan.Repository
	repayments domainRepayment.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(users domainUser.Repository, loans domainLoan.Repository, repayments domainRepayment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{users: users, loans: loans, repayments: repayments, uow: tx}
}

type ApplyInput struct {
	UserID         string   `json:"user_id"`
	Amount         float64  `json:"amount"`
	DurationMonths int      `json:"duration"`
	Purpose        string   `json:"purpose"`
	GuarantorNos   []string `json:"guarantor_ids"`
}

type ReviewInput struct {
	LoanID   string            `json:"loan_id"`
	Decision domainLoan.Status `json:"decision"`
}

type LoanDTO struct {
	LoanID       string     `json:"loan_id"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	Amount       float64    `json:"amount"`
	Duration     int        `json:"duration"`
	Purpose      string     `json:"purpose"`
	GuarantorIDs []string   `json:"guarantor_ids"`
	Status       string     `json:"status"`
	AppliedAt    time.Time  `json:"application_date"`
	ApprovedAt   *time.Time `json:"approval_date,omitempty"`
}

func toDTO(l *domainLoan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:       l.LoanID,
		UserID:       l.UserID,
		UserName:     l.UserName,
		Amount:       l.Amount,
		Duration:     l.DurationMonths,
		Purpose:      l.Purpose,
		GuarantorIDs: l.GuarantorNos,
		Status:       string(l.Status),
		AppliedAt:    l.AppliedAt,
		ApprovedAt:   l.ApprovedAt,
	}
}

func toDTOs(ls []domainLoan.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out
}

// Apply files a new PENDING application. Each of the four guarantor member
// codes must resolve to an existing user, and the borrower must not already
// hold a PENDING or APPROVED loan.
func (uc *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.Amount <= 0 || in.DurationMonths <= 0 {
		return nil, fmt.Errorf("%w: amount and duration must be positive", domainLoan.ErrInvalidInput)
	}

	owner, err := uc.users.GetByUserID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, err
	}

	if len(in.GuarantorNos) != 4 {
		return nil, fmt.Errorf("%w: exactly four guarantors required", domainLoan.ErrInvalidGuarantor)
	}
	guarantors := make(domainLoan.Guarantors, 0, len(in.GuarantorNos))
	for _, g := range in.GuarantorNos {
		no, ok := id.ParseUserNo(g)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domainLoan.ErrInvalidGuarantor, g)
		}
		gu, err := uc.users.GetByUserNo(ctx, no)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", domainLoan.ErrInvalidGuarantor, g)
			}
			return nil, err
		}
		guarantors = append(guarantors, gu.Number())
	}

	_, err = uc.loans.GetActiveByUserID(ctx, in.UserID)
	switch {
	case err == nil:
		return nil, domainLoan.ErrActiveLoanExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	l := &domainLoan.Loan{
		LoanID:         id.NewID32(),
		UserID:         owner.UserID,
		UserName:       owner.Name,
		Amount:         in.Amount,
		DurationMonths: in.DurationMonths,
		Purpose:        in.Purpose,
		GuarantorNos:   guarantors,
		Status:         domainLoan.StatusPending,
		AppliedAt:      time.Now().UTC(),
	}
	if err := uc.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Review decides a PENDING loan. Approval stamps the approval time, writes
// the full repayment plan, schedules a reminder three days ahead of every
// future installment, and always appends one decision-notice SMS. The whole
// thing runs in one transaction so a concurrent second review sees the
// already-updated status and fails the state guard.
func (uc *Usecase) Review(ctx context.Context, in ReviewInput) (*LoanDTO, error) {
	if in.Decision != domainLoan.StatusApproved && in.Decision != domainLoan.StatusRejected {
		return nil, fmt.Errorf("%w: decision %q", domainLoan.ErrInvalidInput, in.Decision)
	}

	var dto *LoanDTO
	err := uc.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, in.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.ErrNotFound
			}
			return err
		}
		if l.Status != domainLoan.StatusPending {
			return domainLoan.ErrInvalidTransition
		}

		borrower, err := r.Users.GetByUserID(ctx, l.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainUser.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		l.Status = in.Decision
		if in.Decision == domainLoan.StatusApproved {
			approvedAt := now
			l.ApprovedAt = &approvedAt
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		var notices []domainSms.Log
		if in.Decision == domainLoan.StatusApproved {
			plan := domainRepayment.BuildSchedule(l.LoanID, l.Amount, l.DurationMonths, l.ApprovedAt, now, false)
			if err := r.Repayments.CreateBatch(ctx, plan); err != nil {
				return err
			}
			notices = append(notices, reminderNotices(l, borrower, plan, now)...)
		}

		notices = append(notices, domainSms.Log{
			SmsID:    id.NewID32(),
			LoanID:   l.LoanID,
			UserName: borrower.Name,
			Message: fmt.Sprintf("Your loan of ₦%s has been %s.",
				formatAmount(l.Amount), strings.ToLower(string(in.Decision))),
			Date:   now,
			Status: domainSms.StatusSent,
		})
		if err := r.SmsLogs.CreateBatch(ctx, notices); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// reminderNotices schedules one SCHEDULED entry per future UPCOMING
// installment, dated reminderLeadDays before its due date. Reminders whose
// send time has already passed are dropped rather than backfilled.
func reminderNotices(l *domainLoan.Loan, borrower *domainUser.User, plan []domainRepayment.Repayment, now time.Time) []domainSms.Log {
	out := make([]domainSms.Log, 0, len(plan))
	for _, inst := range plan {
		if inst.Status != domainRepayment.StatusUpcoming {
			continue
		}
		remindAt := inst.DueDate.AddDate(0, 0, -reminderLeadDays)
		if !remindAt.After(now) {
			continue
		}
		out = append(out, domainSms.Log{
			SmsID:    id.NewID32(),
			LoanID:   l.LoanID,
			UserName: borrower.Name,
			Message: fmt.Sprintf("Hi %s, your payment of ₦%.2f is due on %s.",
				borrower.Name, inst.Amount, inst.DueDate.Format("02 Jan 2006")),
			Date:   remindAt,
			Status: domainSms.StatusScheduled,
		})
	}
	return out
}

// formatAmount renders 120000 as "120,000" and 120000.5 as "120,000.5".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 && whole[i-1] != '-' {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func (uc *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := uc.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

// CurrentForBorrower returns the borrower's newest PENDING or APPROVED
// loan, or nil when there is none. Absence is not an error here: the
// borrower dashboard renders an empty state from it.
func (uc *Usecase) CurrentForBorrower(ctx context.Context, userID string) (*LoanDTO, error) {
	l, err := uc.loans.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (uc *Usecase) ListForBorrower(ctx context.Context, userID string) ([]LoanDTO, error) {
	ls, err := uc.loans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (uc *Usecase) ListByStatuses(ctx context.Context, statuses []domainLoan.Status) ([]LoanDTO, error) {
	ls, err := uc.loans.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (uc *Usecase) ListAll(ctx context.Context) ([]LoanDTO, error) {
	ls, err := uc.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

// Repayments returns a loan's installment plan, empty until the loan is
// approved.
func (uc *Usecase) Repayments(ctx context.Context, loanID string) ([]domainRepayment.Repayment, error) {
	return uc.repayments.ListByLoanID(ctx, loanID)
}
