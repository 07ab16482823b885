package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	healthController "traza/pkg/health/controller"
	"traza/pkg/httpx"
	"traza/pkg/logger"
	lotController "traza/pkg/lot/controller"
	"traza/pkg/middleware"
	processController "traza/pkg/process/controller"
	qualityController "traza/pkg/quality/controller"
	transportController "traza/pkg/transport/controller"
)

// New registers every route on e. Paths are declared without the trailing slash; the
// slash clients send is stripped before routing.
func New(
	e *echo.Echo,
	log *logger.Logger,
	lotCtrl lotController.LotController,
	processCtrl processController.ProcessController,
	qualityCtrl qualityController.QualityController,
	transportCtrl transportController.TransportController,
	dashboard interface{ Show(echo.Context) error },
	healthCtrl healthController.HealthController,
	metricsHandler http.Handler,
) *echo.Echo {
	e.Validator = httpx.NewValidator()
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(log))

	e.GET("/", dashboard.Show)
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	api := e.Group("/api")

	api.GET("/lotes", lotCtrl.List)
	api.POST("/lotes", lotCtrl.Create)
	api.GET("/lotes/:id", lotCtrl.Get)
	api.DELETE("/lotes/:id", lotCtrl.Delete)
	api.GET("/lotes/:id/export.xlsx", lotCtrl.Export)
	api.GET("/lotes/codigo/:code", lotCtrl.GetByCode)

	api.POST("/procesos", processCtrl.Create)
	api.POST("/procesos/:id/controles", qualityCtrl.Create)

	api.POST("/transportes", transportCtrl.Create)
	api.POST("/transportes/:id/temperatura", transportCtrl.RecordTemperature)

	api.POST("/entregas/:id", transportCtrl.Deliver)
	return e
}
