package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords; callers must never distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSession            = errors.New("session unavailable")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrToolNotFound       = errors.New("tool not found")
	ErrUserNotFound       = errors.New("user not found")
)

// InvalidInputError reports which required fields were missing or malformed
// on an admin catalog mutation.
type InvalidInputError struct {
	Fields []string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}
