package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// Auth validates the opaque session token for the given principal kind
// and injects the resolved principal into context.
//
// User and intern routes require a "Bearer <token>" header. Admin routes
// additionally accept the bare token, which is what the legacy console
// sends.
func Auth(registry ports.SessionRegistry, kind domain.PrincipalKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c.Request().Header.Get("Authorization"), kind)
			if err != nil {
				return err
			}

			principal, err := registry.Validate(c.Request().Context(), kind, token)
			if err != nil {
				return err
			}

			c.Set("principal", principal)
			c.Set("session_token", token)

			return next(c)
		}
	}
}

func extractToken(header string, kind domain.PrincipalKind) (string, error) {
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1], nil
	}

	// Bare token without a scheme.
	if kind == domain.KindAdmin && !strings.Contains(header, " ") {
		return header, nil
	}

	return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
}
