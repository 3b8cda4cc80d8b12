package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/server/models"
)

func (s *HTTPServer) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, common.ErrorValidation)
	}

	user := &models.User{
		UserName:   req.UserName,
		FamilyName: req.FamilyName,
		Email:      req.Email,
		Sex:        req.Sex,
		Color:      req.Color,
		Age:        req.Age,
	}

	user, token, err := s.users.Signup(c.Request().Context(), user, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	s.logger.Info(c.Request().Context(), "user registered", "email", user.Email)

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "userId": user.ID})
}

func (s *HTTPServer) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, common.ErrorValidation)
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// logout exists for API parity with clients that call it; tokens are
// stateless, so there is nothing to revoke server-side.
func (s *HTTPServer) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

func (s *HTTPServer) listUsers(c echo.Context) error {
	users, err := s.users.ListUsers(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}

	result := make([]userResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}

	return c.JSON(http.StatusOK, result)
}
