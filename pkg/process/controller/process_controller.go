package controller

import "github.com/labstack/echo/v4"

type ProcessController interface {
	Create(c echo.Context) error
}
