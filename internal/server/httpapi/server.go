// Package httpapi exposes the service over HTTP using Echo: route wiring,
// bearer-token middleware, request/response DTOs and the error-to-status
// mapping.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mlukash/todoshare/internal/logging"
	"github.com/mlukash/todoshare/internal/server/services"
)

// HTTPServer serves the public API.
type HTTPServer struct {
	echo        *echo.Echo
	addr        string
	logger      logging.Logger
	users       *services.UserService
	items       *services.ItemService
	permissions *services.PermissionService
	jwtSecret   []byte
}

// NewHTTPServer builds the Echo instance and registers all routes.
func NewHTTPServer(addr string, logger logging.Logger, us *services.UserService,
	is *services.ItemService, ps *services.PermissionService, jwtSecret string) *HTTPServer {

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &HTTPServer{
		echo:        e,
		addr:        addr,
		logger:      logger,
		users:       us,
		items:       is,
		permissions: ps,
		jwtSecret:   []byte(jwtSecret),
	}

	s.registerRoutes()

	return s
}

// Run starts the listener and blocks until ctx is canceled, then drains
// in-flight requests before returning.
func (s *HTTPServer) Run(ctx context.Context) error {

	errCh := make(chan error, 1)

	go func() {
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}
