package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlukash/todoshare/internal/common"
)

func (s *HTTPServer) createItem(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, common.ErrorValidation)
	}

	item, err := s.items.Create(c.Request().Context(), req.Text, callerID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *HTTPServer) listItems(c echo.Context) error {
	items, err := s.items.ListForUser(c.Request().Context(), callerID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (s *HTTPServer) updateItem(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, common.ErrorValidation)
	}

	item, err := s.items.Update(c.Request().Context(), c.Param("id"), callerID(c), req.Text)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *HTTPServer) deleteItem(c echo.Context) error {
	if err := s.items.Delete(c.Request().Context(), c.Param("id"), callerID(c)); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, "Item Deleted")
}

func (s *HTTPServer) authorizeAll(c echo.Context) error {
	var req authorizeAllRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, common.ErrorValidation)
	}

	items, err := s.items.AuthorizeAll(c.Request().Context(), callerID(c), req.TargetUserID)
	if err != nil {
		return s.respondError(c, err)
	}

	s.logger.Info(c.Request().Context(), "items shared",
		"from", callerID(c), "to", req.TargetUserID)

	return c.JSON(http.StatusOK, toItemResponses(items))
}
