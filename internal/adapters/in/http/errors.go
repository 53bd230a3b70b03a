package http

import (
	"net/http"

	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use case error to a status code. Validation failures and
// missing objects carry their message; anything else is logged and hidden.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	case errs.IsNotFound(err):
		return c.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
