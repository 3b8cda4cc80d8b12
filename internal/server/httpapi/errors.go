package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlukash/todoshare/internal/common"
)

// respondError maps a service error onto the HTTP status taxonomy and sends
// the JSON error body. Unrecognized errors become a uniform 500; the raw
// error text is logged, not leaked.
func (s *HTTPServer) respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid fields"})
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	case errors.Is(err, common.ErrorForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.JSON(http.StatusConflict, echo.Map{"message": "Email already registered"})
	default:
		s.logger.Error(c.Request().Context(), "request failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
