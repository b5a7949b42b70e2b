package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/superapp/tool-portal/internal/api/metrics"
	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/core/ports"
	"github.com/superapp/tool-portal/internal/infrastructure/session"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User    domain.Authenticated `json:"user"`
	Landing string               `json:"landing"`
}

type sessionResponse struct {
	Authenticated bool                  `json:"authenticated"`
	Guest         bool                  `json:"guest"`
	User          *domain.Authenticated `json:"user,omitempty"`
	Landing       string                `json:"landing"`
}

// Login authenticates a user and establishes a fresh session.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	rec := session.NewAuthenticated(user)
	if err := h.sessions.Regenerate(c, rec); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	principal := domain.Authenticated{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
	return c.JSON(http.StatusOK, loginResponse{User: principal, Landing: landingFor(principal)})
}

// Guest establishes an anonymous session with ephemeral selections.
//
// @Summary      Start a guest session
// @Tags         auth
// @Produce      json
// @Success      200   {object}  sessionResponse
// @Failure      500   {object}  map[string]string
// @Router       /auth/guest [post]
func (h *AuthHandler) Guest(c echo.Context) error {
	rec := session.NewGuest()
	if err := h.sessions.Regenerate(c, rec); err != nil {
		return err
	}

	metrics.GuestSessionsStartedTotal.Inc()
	return c.JSON(http.StatusOK, sessionResponse{Guest: true, Landing: "/portal/dashboard"})
}

// Logout destroys the session unconditionally.
//
// @Summary      End the current session
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Destroy(c)
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current principal so clients can pick their landing
// surface; an unestablished request is a 200, not an error.
//
// @Summary      Describe the current session
// @Tags         auth
// @Produce      json
// @Success      200   {object}  sessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return c.JSON(http.StatusOK, sessionResponse{Landing: "/"})
	}

	switch p := principal.(type) {
	case domain.Authenticated:
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: &p, Landing: landingFor(p)})
	case *domain.Guest:
		return c.JSON(http.StatusOK, sessionResponse{Guest: true, Landing: "/portal/dashboard"})
	default:
		return c.JSON(http.StatusOK, sessionResponse{Landing: "/"})
	}
}

func landingFor(p domain.Authenticated) string {
	if p.IsAdmin() {
		return "/admin/tools"
	}
	return "/portal/dashboard"
}
