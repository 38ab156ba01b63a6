package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// Admin loads the caller's stored record and permits only the admin role.
// It must run after Auth: it reads the email claim Auth placed in the
// context, and a route applying Admin without Auth would check an identity
// that was never validated.
func Admin(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextKeyEmail).(string)

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return forbidden(c)
				}
				return err
			}
			if !user.IsAdmin() {
				return forbidden(c)
			}

			return next(c)
		}
	}
}

func forbidden(c echo.Context) error {
	metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
	return c.JSON(http.StatusForbidden, map[string]any{
		"error":   true,
		"message": "forbidden access",
	})
}
