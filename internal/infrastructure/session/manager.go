// Package session implements server-side sessions: state lives in Redis, the
// browser carries only a signed token naming the session id. Regenerating on
// every privilege change (login, guest start) defeats session fixation.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/superapp/tool-portal/internal/core/domain"
)

const (
	// CookieName is the session cookie issued to browsers.
	CookieName = "portal_session"

	keyPrefix  = "session:"
	defaultTTL = 8 * time.Hour
)

// Manager owns the session lifecycle against a Redis client.
type Manager struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewManager(rdb *redis.Client, secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{rdb: rdb, secret: []byte(secret), ttl: ttl}
}

// Load resolves the request's session record. A missing, expired, tampered
// or unparseable session resolves to (nil, nil) — an unestablished request,
// not an error. Only a Redis failure is reported as an error.
func (m *Manager) Load(c echo.Context) (*Record, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}
	sid, ok := m.parseToken(cookie.Value)
	if !ok {
		return nil, nil
	}

	payload, err := m.rdb.Get(c.Request().Context(), keyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, nil
	}
	rec.ID = sid
	return &rec, nil
}

// Save persists the record under its current id, refreshing the TTL.
func (m *Manager) Save(ctx context.Context, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := m.rdb.Set(ctx, keyPrefix+rec.ID, payload, m.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Regenerate establishes rec under a brand-new session id, removes whatever
// session the request carried before, and issues the new cookie. On failure
// no principal is established and the caller sees domain.ErrSession.
func (m *Manager) Regenerate(c echo.Context, rec *Record) error {
	ctx := c.Request().Context()

	var oldKey string
	if cookie, err := c.Cookie(CookieName); err == nil {
		if sid, ok := m.parseToken(cookie.Value); ok {
			oldKey = keyPrefix + sid
		}
	}

	rec.ID = uuid.NewString()
	token, err := m.signToken(rec.ID)
	if err != nil {
		return fmt.Errorf("%w: sign token: %v", domain.ErrSession, err)
	}
	if err := m.Save(ctx, rec); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSession, err)
	}
	if oldKey != "" {
		_ = m.rdb.Del(ctx, oldKey).Err()
	}

	c.SetCookie(m.cookie(token, int(m.ttl.Seconds())))
	return nil
}

// Destroy removes the session record and expires the cookie. Destroying an
// absent session is a no-op, so the operation is idempotent.
func (m *Manager) Destroy(c echo.Context) {
	if cookie, err := c.Cookie(CookieName); err == nil {
		if sid, ok := m.parseToken(cookie.Value); ok {
			_ = m.rdb.Del(c.Request().Context(), keyPrefix+sid).Err()
		}
	}
	c.SetCookie(m.cookie("", -1))
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) signToken(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parseToken(token string) (string, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}
	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}
