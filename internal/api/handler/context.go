package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it
// is a routing mistake, rejected with 401 rather than panicking.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get("principal").(*domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return principal, nil
}

// ctxToken returns the raw session token the request authenticated with.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("session_token").(string)
	return token
}
