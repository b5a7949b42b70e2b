package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/superapp/tool-portal/internal/api/middleware"
	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/infrastructure/session"
)

// ctxPrincipal extracts the principal injected by the session middleware.
// Handlers behind RequireSession/RequireAdmin can rely on it being present;
// the error path exists for handlers mounted without a guard.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return principal, nil
}

// ctxSession returns the raw session record for the request, or nil when the
// request is unestablished.
func ctxSession(c echo.Context) *session.Record {
	rec, _ := c.Get(middleware.SessionKey).(*session.Record)
	return rec
}
