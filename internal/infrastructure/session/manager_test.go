package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/superapp/tool-portal/internal/core/domain"
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewManager(rdb, "test-secret", time.Hour), mr
}

func newEchoContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestManager_RegenerateAndLoad(t *testing.T) {
	m, _ := newTestManager(t)

	c, rec := newEchoContext()
	if err := m.Regenerate(c, NewGuest()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	cookie := sessionCookie(t, rec)
	if !cookie.HttpOnly || cookie.Path != "/" {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}

	c2, _ := newEchoContext(cookie)
	loaded, err := m.Load(c2)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil || loaded.Kind != KindGuest || loaded.ID == "" {
		t.Fatalf("unexpected record: %+v", loaded)
	}
}

func TestManager_RegenerateInvalidatesOldSession(t *testing.T) {
	m, _ := newTestManager(t)

	// Start as a guest.
	c1, rec1 := newEchoContext()
	if err := m.Regenerate(c1, NewGuest()); err != nil {
		t.Fatalf("guest regenerate: %v", err)
	}
	oldCookie := sessionCookie(t, rec1)

	// Log in carrying the guest cookie: a new session id is minted and the
	// guest record is deleted.
	user := &domain.User{ID: 7, Name: "Judy", Email: "judy@example.com", Role: domain.RoleUser}
	c2, rec2 := newEchoContext(oldCookie)
	if err := m.Regenerate(c2, NewAuthenticated(user)); err != nil {
		t.Fatalf("login regenerate: %v", err)
	}
	newCookie := sessionCookie(t, rec2)
	if newCookie.Value == oldCookie.Value {
		t.Fatal("session token not rotated")
	}

	// The old cookie no longer resolves.
	c3, _ := newEchoContext(oldCookie)
	if rec, err := m.Load(c3); err != nil || rec != nil {
		t.Fatalf("expected old session gone, got rec=%+v err=%v", rec, err)
	}

	// The new cookie resolves to the authenticated record.
	c4, _ := newEchoContext(newCookie)
	rec, err := m.Load(c4)
	if err != nil {
		t.Fatalf("load new session: %v", err)
	}
	if rec == nil || rec.Kind != KindUser || rec.UserID != 7 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestManager_SaveRoundTripsGuestState(t *testing.T) {
	m, _ := newTestManager(t)

	c, rec := newEchoContext()
	guest := NewGuest()
	if err := m.Regenerate(c, guest); err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	guest.GuestSelections = []int64{3, 5}
	guest.GuestInitialized = true
	if err := m.Save(c.Request().Context(), guest); err != nil {
		t.Fatalf("save: %v", err)
	}

	c2, _ := newEchoContext(sessionCookie(t, rec))
	loaded, err := m.Load(c2)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil || !loaded.GuestInitialized || len(loaded.GuestSelections) != 2 {
		t.Fatalf("guest state lost: %+v", loaded)
	}
	if loaded.GuestSelections[0] != 3 || loaded.GuestSelections[1] != 5 {
		t.Fatalf("unexpected selections: %v", loaded.GuestSelections)
	}
}

func TestManager_DestroyIdempotent(t *testing.T) {
	m, _ := newTestManager(t)

	c1, rec1 := newEchoContext()
	if err := m.Regenerate(c1, NewGuest()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	cookie := sessionCookie(t, rec1)

	// Destroy twice with the same cookie; both expire the cookie cleanly.
	for i := 0; i < 2; i++ {
		c, rec := newEchoContext(cookie)
		m.Destroy(c)
		expired := sessionCookie(t, rec)
		if expired.MaxAge >= 0 {
			t.Fatalf("pass %d: cookie not expired: MaxAge=%d", i, expired.MaxAge)
		}
	}

	c, _ := newEchoContext(cookie)
	if rec, err := m.Load(c); err != nil || rec != nil {
		t.Fatalf("expected destroyed session to be gone, got rec=%+v err=%v", rec, err)
	}
}

func TestManager_Load_NoCookie(t *testing.T) {
	m, _ := newTestManager(t)

	c, _ := newEchoContext()
	rec, err := m.Load(c)
	if err != nil || rec != nil {
		t.Fatalf("expected unestablished, got rec=%+v err=%v", rec, err)
	}
}

func TestManager_Load_TamperedCookie(t *testing.T) {
	m, _ := newTestManager(t)

	c, _ := newEchoContext(&http.Cookie{Name: CookieName, Value: "not-a-token"})
	if rec, err := m.Load(c); err != nil || rec != nil {
		t.Fatalf("garbage token must resolve to unestablished, got rec=%+v err=%v", rec, err)
	}
}

func TestManager_Load_WrongSecret(t *testing.T) {
	m, mr := newTestManager(t)

	// A token signed with a different secret must not resolve.
	other := NewManager(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "other-secret", time.Hour)
	c1, rec1 := newEchoContext()
	if err := other.Regenerate(c1, NewGuest()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	c2, _ := newEchoContext(sessionCookie(t, rec1))
	if rec, err := m.Load(c2); err != nil || rec != nil {
		t.Fatalf("foreign-signed token must resolve to unestablished, got rec=%+v err=%v", rec, err)
	}
}

func TestManager_Regenerate_RedisDown(t *testing.T) {
	m, mr := newTestManager(t)
	mr.Close()

	c, _ := newEchoContext()
	err := m.Regenerate(c, NewGuest())
	if !errors.Is(err, domain.ErrSession) {
		t.Fatalf("expected ErrSession, got %v", err)
	}
}

func TestManager_Load_RedisDown(t *testing.T) {
	m, mr := newTestManager(t)

	c1, rec1 := newEchoContext()
	if err := m.Regenerate(c1, NewGuest()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	mr.Close()

	c2, _ := newEchoContext(sessionCookie(t, rec1))
	if _, err := m.Load(c2); err == nil {
		t.Fatal("expected an error when the session store is unreachable")
	}
}
