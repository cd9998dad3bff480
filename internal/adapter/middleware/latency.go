package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// SimulatedLatency delays every request by d before it reaches the handler.
// The store answers in microseconds, which makes the UI's loading states
// untestable; the delay stands in for real network cost until a persistent
// backend replaces it. The sleep respects request cancellation.
func SimulatedLatency(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if d <= 0 {
				return next(c)
			}
			ctx := c.Request().Context()
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
			}
			return next(c)
		}
	}
}
