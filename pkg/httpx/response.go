package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"traza/pkg/apperr"
)

const (
	MsgInvalidJSON = "invalid JSON format"
	MsgInvalidData = "invalid data"
)

// Response is the envelope of every API answer.
type Response struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Count   *int              `json:"count,omitempty"`
}

func OK(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

// List answers with data and its length.
func List(c echo.Context, data any, count int) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func Created(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

func BadRequest(c echo.Context, message string, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, Response{Message: message, Errors: fields})
}

func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, Response{Message: message})
}

// Fail answers with the status that matches the kind of a service error.
func Fail(c echo.Context, err error) error {
	return c.JSON(StatusOf(err), Response{Message: err.Error()})
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindRuleViolation, apperr.KindFormat:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// BindAndValidate decodes the body into req and runs the registered validator. On failure
// it writes the 400 answer and returns false.
func BindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, BadRequest(c, MsgInvalidJSON, nil)
	}
	if err := c.Validate(req); err != nil {
		var fe FieldErrors
		if errors.As(err, &fe) {
			return false, BadRequest(c, MsgInvalidData, fe)
		}
		return false, BadRequest(c, MsgInvalidData, map[string]string{"non_field_errors": err.Error()})
	}
	return true, nil
}

// ParamID reads a positive integer path parameter.
func ParamID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
