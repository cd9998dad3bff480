package loan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	domainLoan "perfectbank-backend/internal/domain/loan"
	domainRepayment "perfectbank-backend/internal/domain/repayment"
	domainSms "perfectbank-backend/internal/domain/sms"
	domainUser "perfectbank-backend/internal/domain/user"
	"perfectbank-backend/internal/domain/uow"
	"perfectbank-backend/internal/testutil/loanmock"
	"perfectbank-backend/internal/testutil/repaymentmock"
	"perfectbank-backend/internal/testutil/smsmock"
	"perfectbank-backend/internal/testutil/uowmock"
	"perfectbank-backend/internal/testutil/usermock"
)

const ownerID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

// userStore backs the user repo mock with a tiny fixture set: the owner
// plus members 4..7 usable as guarantors.
func userStore() *usermock.Repo {
	byNo := map[uint64]*domainUser.User{}
	for no := uint64(4); no <= 7; no++ {
		byNo[no] = &domainUser.User{UserID: strings.Repeat("c", 32), UserNo: no, Name: "Guarantor"}
	}
	return &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainUser.User, error) {
			if userID == ownerID {
				return &domainUser.User{UserID: ownerID, UserNo: 1, Name: "John Doe", Phone: "08012345678"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByUserNoFn: func(ctx context.Context, no uint64) (*domainUser.User, error) {
			if u, ok := byNo[no]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func guarantors() []string {
	return []string{"PMB-00004", "PMB-00005", "PMB-00006", "PMB-00007"}
}

func TestApply_Success(t *testing.T) {
	var created *domainLoan.Loan
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domainLoan.Loan) error {
			created = l
			return nil
		},
	}
	uc := NewUsecase(userStore(), loans, &repaymentmock.Repo{}, &uowmock.UoW{})

	dto, err := uc.Apply(context.Background(), ApplyInput{
		UserID:         ownerID,
		Amount:         50_000,
		DurationMonths: 6,
		Purpose:        "Home renovation",
		GuarantorNos:   guarantors(),
	})
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if created == nil {
		t.Fatal("Create not called")
	}
	if dto.Status != string(domainLoan.StatusPending) {
		t.Fatalf("status = %s, want PENDING", dto.Status)
	}
	if dto.ApprovedAt != nil {
		t.Fatal("new application must not carry an approval date")
	}
	if dto.Amount != 50_000 || dto.Duration != 6 {
		t.Fatalf("amount/duration = %v/%d", dto.Amount, dto.Duration)
	}
	if created.UserName != "John Doe" {
		t.Fatalf("denormalized name = %q", created.UserName)
	}
	if len(dto.LoanID) != 32 {
		t.Fatalf("LoanID length = %d", len(dto.LoanID))
	}
}

func TestApply_CanonicalizesGuarantorCodes(t *testing.T) {
	var created *domainLoan.Loan
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domainLoan.Loan) error {
			created = l
			return nil
		},
	}
	uc := NewUsecase(userStore(), loans, &repaymentmock.Repo{}, &uowmock.UoW{})

	_, err := uc.Apply(context.Background(), ApplyInput{
		UserID: ownerID, Amount: 10_000, DurationMonths: 3, Purpose: "x",
		GuarantorNos: []string{"pmb-00004", "PMB-00005", "pmb-00006", "PMB-00007"},
	})
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	for i, want := range guarantors() {
		if created.GuarantorNos[i] != want {
			t.Fatalf("guarantor[%d] = %q, want %q", i, created.GuarantorNos[i], want)
		}
	}
}

func TestApply_InvalidGuarantor(t *testing.T) {
	uc := NewUsecase(userStore(), &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domainLoan.Loan) error {
			t.Fatal("Create must not be called with a bad guarantor")
			return nil
		},
	}, &repaymentmock.Repo{}, &uowmock.UoW{})

	in := ApplyInput{
		UserID: ownerID, Amount: 10_000, DurationMonths: 3, Purpose: "x",
		GuarantorNos: []string{"PMB-00004", "PMB-00005", "PMB-00006", "PMB-99999"},
	}
	_, err := uc.Apply(context.Background(), in)
	if !errors.Is(err, domainLoan.ErrInvalidGuarantor) {
		t.Fatalf("err = %v, want ErrInvalidGuarantor", err)
	}
}

func TestApply_RejectsWhenActiveLoanExists(t *testing.T) {
	loans := &loanmock.Repo{
		GetActiveByUserIDFn: func(ctx context.Context, userID string) (*domainLoan.Loan, error) {
			return &domainLoan.Loan{LoanID: strings.Repeat("a", 32), Status: domainLoan.StatusPending}, nil
		},
		CreateFn: func(ctx context.Context, l *domainLoan.Loan) error {
			t.Fatal("Create must not be called when an active loan exists")
			return nil
		},
	}
	uc := NewUsecase(userStore(), loans, &repaymentmock.Repo{}, &uowmock.UoW{})

	_, err := uc.Apply(context.Background(), ApplyInput{
		UserID: ownerID, Amount: 10_000, DurationMonths: 3, Purpose: "x",
		GuarantorNos: guarantors(),
	})
	if !errors.Is(err, domainLoan.ErrActiveLoanExists) {
		t.Fatalf("err = %v, want ErrActiveLoanExists", err)
	}
}

func TestApply_UnknownOwner(t *testing.T) {
	uc := NewUsecase(userStore(), &loanmock.Repo{}, &repaymentmock.Repo{}, &uowmock.UoW{})
	_, err := uc.Apply(context.Background(), ApplyInput{
		UserID: strings.Repeat("e", 32), Amount: 10_000, DurationMonths: 3, Purpose: "x",
		GuarantorNos: guarantors(),
	})
	if !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("err = %v, want user.ErrNotFound", err)
	}
}

// reviewFixture wires a pending loan into mock repos that capture writes.
func reviewFixture(t *testing.T, amount float64, duration int) (*Usecase, *domainLoan.Loan, *[]domainRepayment.Repayment, *[]domainSms.Log) {
	t.Helper()
	pending := &domainLoan.Loan{
		LoanID:         strings.Repeat("a", 32),
		UserID:         ownerID,
		UserName:       "John Doe",
		Amount:         amount,
		DurationMonths: duration,
		Status:         domainLoan.StatusPending,
		AppliedAt:      time.Now().UTC().AddDate(0, 0, -2),
	}

	var plan []domainRepayment.Repayment
	var notices []domainSms.Log

	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domainLoan.Loan, error) {
			if loanID != pending.LoanID {
				return nil, gorm.ErrRecordNotFound
			}
			return pending, nil
		},
	}
	repays := &repaymentmock.Repo{
		CreateBatchFn: func(ctx context.Context, rs []domainRepayment.Repayment) error {
			plan = append(plan, rs...)
			return nil
		},
	}
	logs := &smsmock.Repo{
		CreateBatchFn: func(ctx context.Context, ls []domainSms.Log) error {
			notices = append(notices, ls...)
			return nil
		},
	}
	users := userStore()

	tx := &uowmock.UoW{Repos: uow.Repos{Users: users, Loans: loans, Repayments: repays, SmsLogs: logs}}
	uc := NewUsecase(users, loans, repays, tx)
	return uc, pending, &plan, &notices
}

func TestReview_Approve(t *testing.T) {
	uc, pending, plan, notices := reviewFixture(t, 120_000, 12)

	dto, err := uc.Review(context.Background(), ReviewInput{
		LoanID:   pending.LoanID,
		Decision: domainLoan.StatusApproved,
	})
	if err != nil {
		t.Fatalf("Review err: %v", err)
	}
	if dto.Status != string(domainLoan.StatusApproved) {
		t.Fatalf("status = %s", dto.Status)
	}
	if dto.ApprovedAt == nil {
		t.Fatal("approval date not set")
	}
	if len(*plan) != 12 {
		t.Fatalf("installments = %d, want 12", len(*plan))
	}
	for _, r := range *plan {
		if r.Amount != 10_000 {
			t.Fatalf("installment amount = %v, want 10000", r.Amount)
		}
	}

	// Every installment is in the future, so each gets a reminder plus the
	// one decision notice.
	if len(*notices) != 13 {
		t.Fatalf("sms logs = %d, want 13", len(*notices))
	}
	scheduled := 0
	for _, n := range *notices {
		if n.Status == domainSms.StatusScheduled {
			scheduled++
		}
	}
	if scheduled != 12 {
		t.Fatalf("scheduled reminders = %d, want 12", scheduled)
	}
	last := (*notices)[len(*notices)-1]
	if last.Status != domainSms.StatusSent {
		t.Fatalf("decision notice status = %s", last.Status)
	}
	if !strings.Contains(last.Message, "₦120,000") || !strings.Contains(last.Message, "approved") {
		t.Fatalf("decision notice = %q", last.Message)
	}
}

func TestReview_Reject(t *testing.T) {
	uc, pending, plan, notices := reviewFixture(t, 75_000, 6)

	dto, err := uc.Review(context.Background(), ReviewInput{
		LoanID:   pending.LoanID,
		Decision: domainLoan.StatusRejected,
	})
	if err != nil {
		t.Fatalf("Review err: %v", err)
	}
	if dto.ApprovedAt != nil {
		t.Fatal("rejected loan must not carry an approval date")
	}
	if len(*plan) != 0 {
		t.Fatalf("rejected loan generated %d installments", len(*plan))
	}
	if len(*notices) != 1 {
		t.Fatalf("sms logs = %d, want exactly 1", len(*notices))
	}
	if !strings.Contains((*notices)[0].Message, "rejected") {
		t.Fatalf("notice = %q", (*notices)[0].Message)
	}
}

func TestReview_NotPending(t *testing.T) {
	uc, pending, _, _ := reviewFixture(t, 75_000, 6)
	pending.Status = domainLoan.StatusApproved

	_, err := uc.Review(context.Background(), ReviewInput{
		LoanID:   pending.LoanID,
		Decision: domainLoan.StatusRejected,
	})
	if !errors.Is(err, domainLoan.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestReview_UnknownLoan(t *testing.T) {
	uc, _, _, _ := reviewFixture(t, 75_000, 6)
	_, err := uc.Review(context.Background(), ReviewInput{
		LoanID:   strings.Repeat("0", 32),
		Decision: domainLoan.StatusApproved,
	})
	if !errors.Is(err, domainLoan.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReview_InvalidDecision(t *testing.T) {
	uc, pending, _, _ := reviewFixture(t, 75_000, 6)
	_, err := uc.Review(context.Background(), ReviewInput{
		LoanID:   pending.LoanID,
		Decision: domainLoan.StatusCompleted,
	})
	if !errors.Is(err, domainLoan.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestApply_NonPositiveAmountOrDuration(t *testing.T) {
	uc := NewUsecase(userStore(), &loanmock.Repo{}, &repaymentmock.Repo{}, &uowmock.UoW{})

	for _, in := range []ApplyInput{
		{UserID: ownerID, Amount: 0, DurationMonths: 3, Purpose: "x"},
		{UserID: ownerID, Amount: 10_000, DurationMonths: 0, Purpose: "x"},
		{UserID: ownerID, Amount: -5, DurationMonths: -1, Purpose: "x"},
	} {
		_, err := uc.Apply(context.Background(), in)
		if !errors.Is(err, domainLoan.ErrInvalidInput) {
			t.Fatalf("Apply(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestCurrentForBorrower_NoneIsNotAnError(t *testing.T) {
	uc := NewUsecase(userStore(), &loanmock.Repo{}, &repaymentmock.Repo{}, &uowmock.UoW{})
	dto, err := uc.CurrentForBorrower(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if dto != nil {
		t.Fatalf("dto = %+v, want nil", dto)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		120000:    "120,000",
		1500000:   "1,500,000",
		30000:     "30,000",
		999:       "999",
		120000.5:  "120,000.5",
		45_000.25: "45,000.25",
	}
	for v, want := range cases {
		if got := formatAmount(v); got != want {
			t.Errorf("formatAmount(%v) = %q, want %q", v, got, want)
		}
	}
}
