package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

const ContextKeyRequestID = "request_id"

// RequestID reuses an incoming X-Request-ID or assigns a fresh UUID, echoing it back on
// the response.
func RequestID() echo.MiddlewareFunc {
	return echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, rid string) {
			c.Set(ContextKeyRequestID, rid)
		},
	})
}

// RequestIDOf returns the id RequestID stored on c, or "".
func RequestIDOf(c echo.Context) string {
	rid, _ := c.Get(ContextKeyRequestID).(string)
	return rid
}
