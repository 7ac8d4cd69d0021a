package response

import (
	"net/http"

	"ZamCare/pkg/apperr"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform success body: {"success":true,"data":...} with an
// optional count on list responses.
type Envelope struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// List wraps a collection response and stamps its length.
func List(c echo.Context, data any, count int) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// Err maps any error onto the uniform failure envelope.
func Err(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), errorEnvelope{Success: false, Error: apperr.Message(err)})
}
