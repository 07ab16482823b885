package controller

import "github.com/labstack/echo/v4"

type QualityController interface {
	Create(c echo.Context) error
}
