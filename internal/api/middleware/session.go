package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/infrastructure/session"
)

// Context keys set by Resolve.
const (
	PrincipalKey = "principal"
	SessionKey   = "session"
)

// Resolve loads the request's session and injects the resolved principal and
// the raw record into context. Requests without a valid session proceed
// unestablished; a failing session store surfaces as an error so the request
// fails loudly instead of silently downgrading an authenticated user.
func Resolve(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rec, err := sessions.Load(c)
			if err != nil {
				return err
			}
			if rec != nil {
				if principal := rec.Principal(); principal != nil {
					c.Set(PrincipalKey, principal)
					c.Set(SessionKey, rec)
				}
			}
			return next(c)
		}
	}
}

// RequireSession passes any established principal through — authenticated or
// guest — and rejects everything else.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(PrincipalKey).(domain.Principal); !ok {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}
