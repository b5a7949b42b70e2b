package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/superapp/tool-portal/internal/api/middleware"
	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/infrastructure/session"
)

type stubAuthService struct {
	user *domain.User
	err  error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newSessionManager(t *testing.T) *session.Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return session.NewManager(rdb, "test-secret", time.Hour)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func findCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	sessions := newSessionManager(t)
	h := NewAuthHandler(&stubAuthService{
		user: &domain.User{ID: 1, Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin},
	}, sessions)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"AdminPass123!"}`)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User    domain.Authenticated `json:"user"`
		Landing string               `json:"landing"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Email != "admin@example.com" || resp.Landing != "/admin/tools" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	cookie := findCookie(rec)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("no session cookie issued")
	}

	// The issued cookie must resolve to the authenticated record.
	verify := httptest.NewRequest(http.MethodGet, "/session", nil)
	verify.AddCookie(cookie)
	loaded, err := sessions.Load(e.NewContext(verify, httptest.NewRecorder()))
	if err != nil || loaded == nil || loaded.Kind != session.KindUser || loaded.UserID != 1 {
		t.Fatalf("session not established: rec=%+v err=%v", loaded, err)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	sessions := newSessionManager(t)
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, sessions)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"nope"}`)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if findCookie(rec) != nil {
		t.Fatal("no session must be established on failed login")
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newSessionManager(t))

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/login", `{"email": not-json`)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400, got %v", err)
	}
}

func TestAuthHandler_Guest(t *testing.T) {
	sessions := newSessionManager(t)
	h := NewAuthHandler(&stubAuthService{}, sessions)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/guest", "")
	rec := httptest.NewRecorder()

	if err := h.Guest(e.NewContext(req, rec)); err != nil {
		t.Fatalf("guest start failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Guest || resp.Authenticated || resp.Landing != "/portal/dashboard" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	cookie := findCookie(rec)
	if cookie == nil {
		t.Fatal("no session cookie issued")
	}
	verify := httptest.NewRequest(http.MethodGet, "/session", nil)
	verify.AddCookie(cookie)
	loaded, err := sessions.Load(e.NewContext(verify, httptest.NewRecorder()))
	if err != nil || loaded == nil || loaded.Kind != session.KindGuest {
		t.Fatalf("guest session not established: rec=%+v err=%v", loaded, err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := newSessionManager(t)
	h := NewAuthHandler(&stubAuthService{}, sessions)
	e := echo.New()

	// Establish a guest session first.
	startRec := httptest.NewRecorder()
	if err := h.Guest(e.NewContext(jsonRequest(http.MethodPost, "/auth/guest", ""), startRec)); err != nil {
		t.Fatalf("guest start failed: %v", err)
	}
	cookie := findCookie(startRec)

	req := jsonRequest(http.MethodPost, "/auth/logout", "")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if expired := findCookie(rec); expired == nil || expired.MaxAge >= 0 {
		t.Fatalf("cookie not expired: %+v", expired)
	}

	verify := httptest.NewRequest(http.MethodGet, "/session", nil)
	verify.AddCookie(cookie)
	if loaded, err := sessions.Load(e.NewContext(verify, httptest.NewRecorder())); err != nil || loaded != nil {
		t.Fatalf("session survived logout: rec=%+v err=%v", loaded, err)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newSessionManager(t))
	e := echo.New()

	cases := []struct {
		name        string
		principal   domain.Principal
		wantLanding string
		wantAuth    bool
		wantGuest   bool
	}{
		{"unestablished", nil, "/", false, false},
		{"admin", domain.Authenticated{ID: 1, Role: domain.RoleAdmin}, "/admin/tools", true, false},
		{"user", domain.Authenticated{ID: 2, Role: domain.RoleUser}, "/portal/dashboard", true, false},
		{"guest", &domain.Guest{}, "/portal/dashboard", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.principal != nil {
				c.Set(middleware.PrincipalKey, tc.principal)
			}

			if err := h.Session(c); err != nil {
				t.Fatalf("session failed: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp sessionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Landing != tc.wantLanding || resp.Authenticated != tc.wantAuth || resp.Guest != tc.wantGuest {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}
