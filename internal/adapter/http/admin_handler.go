package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	userDomain "perfectbank-backend/internal/domain/user"
	useruc "perfectbank-backend/internal/usecase/user"
)

type AdminHandler struct{ uc *useruc.Usecase }

func NewAdminHandler(uc *useruc.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type createUserReq struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role"  validate:"omitempty,oneof=BORROWER LOAN_OFFICER ADMIN"`
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), useruc.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  userDomain.Role(req.Role),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("user_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ToggleFreeze(c echo.Context) error {
	dto, err := h.uc.ToggleFreeze(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// LookupUserByNumber backs the loan form's guarantor check. 404 carries no
// body details on purpose: the caller only needs existence.
func (h *AdminHandler) LookupUserByNumber(c echo.Context) error {
	dto, err := h.uc.GetByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return writeDomainError(c, err)
	}
	if dto == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}
