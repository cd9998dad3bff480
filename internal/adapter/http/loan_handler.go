package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	loanDomain "perfectbank-backend/internal/domain/loan"
	"perfectbank-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	UserID       string   `json:"user_id"       validate:"required,hex32"`
	Amount       float64  `json:"amount"        validate:"required,gt=0"`
	Duration     int      `json:"duration"      validate:"required,gte=1"`
	Purpose      string   `json:"purpose"       validate:"required"`
	GuarantorIDs []string `json:"guarantor_ids" validate:"required,len=4,dive,usernum"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		UserID:         req.UserID,
		Amount:         req.Amount,
		DurationMonths: req.Duration,
		Purpose:        req.Purpose,
		GuarantorNos:   req.GuarantorIDs,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type reviewLoanReq struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
}

func (h *LoanHandler) Review(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req reviewLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Review(c.Request().Context(), loan.ReviewInput{
		LoanID:   loanID,
		Decision: loanDomain.Status(req.Decision),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// List returns every loan, or only those matching ?status=PENDING,APPROVED.
func (h *LoanHandler) List(c echo.Context) error {
	raw := c.QueryParam("status")
	if raw == "" {
		dtos, err := h.uc.ListAll(c.Request().Context())
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}

	var statuses []loanDomain.Status
	for _, s := range strings.Split(raw, ",") {
		st := loanDomain.Status(strings.ToUpper(strings.TrimSpace(s)))
		if !st.Valid() {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status " + s})
		}
		statuses = append(statuses, st)
	}
	dtos, err := h.uc.ListByStatuses(c.Request().Context(), statuses)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) Repayments(c echo.Context) error {
	rs, err := h.uc.Repayments(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *LoanHandler) BorrowerLoans(c echo.Context) error {
	dtos, err := h.uc.ListForBorrower(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// BorrowerCurrentLoan returns the borrower's active loan, or 200 with a
// JSON null when there is none — absence is a normal dashboard state.
func (h *LoanHandler) BorrowerCurrentLoan(c echo.Context) error {
	dto, err := h.uc.CurrentForBorrower(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
