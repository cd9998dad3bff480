package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Base  *Handler
	Auth  *AuthHandler
	Loans *LoanHandler
	Sms   *SmsHandler
	Admin *AdminHandler
}

// RegisterRoutes mounts the whole API surface. There is no auth middleware:
// the client holds the session and role gating happens in the UI, so every
// route is open in this deployment.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Base.Health)

	e.POST("/auth/login", h.Auth.Login)
	e.POST("/auth/register", h.Auth.Register)
	e.PUT("/users/:user_id/password", h.Auth.UpdatePassword)

	e.POST("/loans", h.Loans.Apply)
	e.GET("/loans", h.Loans.List)
	e.GET("/loans/:loan_id", h.Loans.Get)
	e.POST("/loans/:loan_id/review", h.Loans.Review)
	e.GET("/loans/:loan_id/repayments", h.Loans.Repayments)
	e.GET("/loans/:loan_id/sms", h.Sms.ListForLoan)
	e.POST("/loans/:loan_id/sms", h.Sms.SendManual)

	e.GET("/borrowers/:user_id/loans", h.Loans.BorrowerLoans)
	e.GET("/borrowers/:user_id/loans/current", h.Loans.BorrowerCurrentLoan)

	e.GET("/users/number/:number", h.Admin.LookupUserByNumber)

	e.GET("/admin/users", h.Admin.ListUsers)
	e.POST("/admin/users", h.Admin.CreateUser)
	e.DELETE("/admin/users/:user_id", h.Admin.DeleteUser)
	e.POST("/admin/users/:user_id/freeze", h.Admin.ToggleFreeze)
	e.GET("/admin/sms", h.Sms.ListAll)
	e.POST("/admin/sms/bulk", h.Sms.SendBulk)
}
