package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"traza/pkg/logger"
)

// AccessLog writes one line per request through log. 5xx answers log at error level.
func AccessLog(log *logger.Logger) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		// the error handler writes the response first so Status is final
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			if v.Status >= 500 {
				log.Error("request", append(kv, "err", v.Error)...)
			} else {
				log.Info("request", kv...)
			}
			return nil
		},
	})
}
