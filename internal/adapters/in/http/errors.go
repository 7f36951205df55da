package http

import (
	"net/http"

	"agrirent/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var statusByCode = map[errs.Code]int{
	errs.CodeNotFound:           http.StatusNotFound,
	errs.CodeValidation:         http.StatusBadRequest,
	errs.CodeInvalidTransition:  http.StatusConflict,
	errs.CodeConflict:           http.StatusConflict,
	errs.CodePreconditionFailed: http.StatusPreconditionFailed,
	errs.CodeForbidden:          http.StatusForbidden,
	errs.CodeConcurrentUpdate:   http.StatusConflict,
}

// StatusOf maps a use case error to its HTTP status.
func StatusOf(err error) int {
	if status, ok := statusByCode[errs.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c echo.Context, err error) error {
	code := errs.CodeOf(err)
	status := StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = "internal error"
	}
	return c.JSON(status, Error{Code: string(code), Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: string(errs.CodeValidation), Message: message})
}
