package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlukash/todoshare/internal/common"
)

func (s *HTTPServer) grantPermission(c echo.Context) error {
	var req grantPermissionRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, common.ErrorValidation)
	}

	p, err := s.permissions.Grant(c.Request().Context(), callerID(c), req.PermissionTo, req.NameTo)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toPermissionResponse(p))
}

func (s *HTTPServer) listPermissions(c echo.Context) error {
	perms, err := s.permissions.ListForUser(c.Request().Context(), callerID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	result := make([]permissionResponse, 0, len(perms))
	for _, p := range perms {
		result = append(result, toPermissionResponse(p))
	}

	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) deletePermission(c echo.Context) error {
	if err := s.permissions.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, "Item Deleted")
}
