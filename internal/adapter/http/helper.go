package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	loanDomain "perfectbank-backend/internal/domain/loan"
	userDomain "perfectbank-backend/internal/domain/user"
)

// writeDomainError maps domain sentinels onto status codes in one place so
// handlers stay thin.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, userDomain.ErrNotFound), errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, userDomain.ErrEmailTaken),
		errors.Is(err, loanDomain.ErrActiveLoanExists),
		errors.Is(err, loanDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, userDomain.ErrAccountFrozen):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrInvalidGuarantor),
		errors.Is(err, loanDomain.ErrInvalidInput),
		errors.Is(err, userDomain.ErrWrongPassword):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	logrus.WithError(err).Error("unhandled usecase error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
