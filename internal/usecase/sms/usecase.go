package sms

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domainLoan "perfectbank-backend/internal/domain/loan"
	domainSms "perfectbank-backend/internal/domain/sms"
	domainUser "perfectbank-backend/internal/domain/user"
	"perfectbank-backend/pkg/id"
	"perfectbank-backend/pkg/smsgateway"
)

type Usecase struct {
	users   domainUser.Repository
	loans   domainLoan.Repository
	logs    domainSms.Repository
	gateway smsgateway.Gateway
}

func NewUsecase(users domainUser.Repository, loans domainLoan.Repository, logs domainSms.Repository, gw smsgateway.Gateway) *Usecase {
	return &Usecase{users: users, loans: loans, logs: logs, gateway: gw}
}

type BulkInput struct {
	RecipientIDs []string   `json:"recipient_ids"`
	Message      string     `json:"message"`
	ScheduleAt   *time.Time `json:"schedule_at,omitempty"`
}

// SendManual dispatches a one-off message tied to a loan. A gateway
// rejection (including a borrower deleted out from under the loan, leaving
// no destination number) is recorded as FAILED, not surfaced as an error.
func (uc *Usecase) SendManual(ctx context.Context, loanID, message string) (*domainSms.Log, error) {
	l, err := uc.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	var msisdn string
	if u, err := uc.users.GetByUserID(ctx, l.UserID); err == nil {
		msisdn = u.Phone
	}

	status := domainSms.StatusSent
	if _, err := uc.gateway.Send(ctx, msisdn, message); err != nil {
		status = domainSms.StatusFailed
	}

	entry := &domainSms.Log{
		SmsID:    id.NewID32(),
		LoanID:   l.LoanID,
		UserName: l.UserName,
		Message:  message,
		Date:     time.Now().UTC(),
		Status:   status,
	}
	if err := uc.logs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SendBulk fans a message out to the given user ids. Unresolvable ids are
// skipped silently. Each entry is associated with the recipient's APPROVED
// loan when one exists, else their newest loan, else the NoLoan sentinel.
// With a schedule time the entries are recorded as SCHEDULED and nothing is
// dispatched now.
func (uc *Usecase) SendBulk(ctx context.Context, in BulkInput) error {
	now := time.Now().UTC()
	entries := make([]domainSms.Log, 0, len(in.RecipientIDs))

	for _, uid := range in.RecipientIDs {
		u, err := uc.users.GetByUserID(ctx, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		loanID := domainSms.NoLoan
		userLoans, err := uc.loans.ListByUserID(ctx, uid)
		if err != nil {
			return err
		}
		if len(userLoans) > 0 {
			loanID = userLoans[0].LoanID
			for _, l := range userLoans {
				if l.Status == domainLoan.StatusApproved {
					loanID = l.LoanID
					break
				}
			}
		}

		entry := domainSms.Log{
			SmsID:    id.NewID32(),
			LoanID:   loanID,
			UserName: u.Name,
			Message:  in.Message,
		}
		if in.ScheduleAt != nil {
			entry.Date = in.ScheduleAt.UTC()
			entry.Status = domainSms.StatusScheduled
		} else {
			entry.Date = now
			entry.Status = domainSms.StatusSent
			if _, err := uc.gateway.Send(ctx, u.Phone, in.Message); err != nil {
				entry.Status = domainSms.StatusFailed
			}
		}
		entries = append(entries, entry)
	}

	return uc.logs.CreateBatch(ctx, entries)
}

func (uc *Usecase) ListForLoan(ctx context.Context, loanID string) ([]domainSms.Log, error) {
	return uc.logs.ListByLoanID(ctx, loanID)
}

func (uc *Usecase) ListAll(ctx context.Context) ([]domainSms.Log, error) {
	return uc.logs.List(ctx)
}
