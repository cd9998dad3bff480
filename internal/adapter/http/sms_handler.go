package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"perfectbank-backend/internal/usecase/sms"
)

type SmsHandler struct{ uc *sms.Usecase }

func NewSmsHandler(uc *sms.Usecase) *SmsHandler { return &SmsHandler{uc: uc} }

type sendSmsReq struct {
	Message string `json:"message" validate:"required"`
}

func (h *SmsHandler) SendManual(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req sendSmsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	entry, err := h.uc.SendManual(c.Request().Context(), loanID, req.Message)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

type bulkSmsReq struct {
	RecipientIDs []string `json:"recipient_ids" validate:"required,min=1,dive,hex32"`
	Message      string   `json:"message"       validate:"required"`
	// RFC3339; when set, messages are recorded as SCHEDULED for that time.
	ScheduleAt string `json:"schedule_at"   validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (h *SmsHandler) SendBulk(c echo.Context) error {
	var req bulkSmsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := sms.BulkInput{RecipientIDs: req.RecipientIDs, Message: req.Message}
	if req.ScheduleAt != "" {
		at, err := time.Parse(time.RFC3339, req.ScheduleAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid schedule_at"})
		}
		in.ScheduleAt = &at
	}

	if err := h.uc.SendBulk(c.Request().Context(), in); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func (h *SmsHandler) ListForLoan(c echo.Context) error {
	logs, err := h.uc.ListForLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *SmsHandler) ListAll(c echo.Context) error {
	logs, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
