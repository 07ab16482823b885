package controller

import "github.com/labstack/echo/v4"

type TransportController interface {
	Create(c echo.Context) error
	RecordTemperature(c echo.Context) error
	Deliver(c echo.Context) error
}
