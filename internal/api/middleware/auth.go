package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// Context keys set by Auth for downstream stages and handlers.
const (
	ContextKeyEmail  = "email"
	ContextKeyClaims = "claims"
)

// Auth validates the bearer token and injects the caller's claims into the
// request context. It short-circuits with 401 before any store access.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c, "missing_header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c, "invalid_header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				var ae *domain.AuthError
				if errors.As(err, &ae) {
					c.Logger().Debugf("token rejected: %s", ae.Reason)
				}
				return unauthorized(c, "invalid_token")
			}

			c.Set(ContextKeyEmail, claims.Email())
			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, reason string) error {
	metrics.AuthDenialsTotal.WithLabelValues(reason).Inc()
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"error":   true,
		"message": "unauthorized access",
	})
}
