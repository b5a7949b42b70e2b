package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/superapp/tool-portal/internal/core/domain"
)

// RequireAdmin passes only an authenticated principal with the admin role.
// Guests and regular users get an explicit denial, never a redirect, so a
// non-admin can tell "forbidden" apart from "not found".
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(domain.Principal)
			auth, ok := principal.(domain.Authenticated)
			if !ok || !auth.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
