package session

import (
	"github.com/superapp/tool-portal/internal/core/domain"
)

const (
	KindUser  = "user"
	KindGuest = "guest"
)

// Record is the server-side session state, stored as JSON in Redis under
// session:<id>. Kind decides the single valid interpretation: a record is
// either an authenticated user or a guest, never both.
type Record struct {
	ID               string  `json:"-"`
	Kind             string  `json:"kind"`
	UserID           int64   `json:"user_id,omitempty"`
	Name             string  `json:"name,omitempty"`
	Email            string  `json:"email,omitempty"`
	Role             string  `json:"role,omitempty"`
	GuestSelections  []int64 `json:"guest_selections,omitempty"`
	GuestInitialized bool    `json:"guest_initialized,omitempty"`
}

// NewAuthenticated builds a fresh record for a logged-in user. Any guest
// state from a prior session is deliberately absent: a former guest's
// ephemeral selections are discarded on login, never merged.
func NewAuthenticated(user *domain.User) *Record {
	return &Record{
		Kind:   KindUser,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
}

// NewGuest builds a fresh, uninitialized guest record. The selection
// defaults are populated lazily on the first dashboard read.
func NewGuest() *Record {
	return &Record{Kind: KindGuest}
}

// Principal converts the record into the domain principal. Unknown kinds
// (e.g. a corrupted record) resolve to nil, i.e. unestablished.
func (r *Record) Principal() domain.Principal {
	switch r.Kind {
	case KindUser:
		return domain.Authenticated{ID: r.UserID, Name: r.Name, Email: r.Email, Role: r.Role}
	case KindGuest:
		return &domain.Guest{Selections: r.GuestSelections, Initialized: r.GuestInitialized}
	default:
		return nil
	}
}

// SyncGuest copies a mutated guest principal back into the record before it
// is persisted. No-op for authenticated records.
func (r *Record) SyncGuest(g *domain.Guest) {
	if r.Kind != KindGuest {
		return
	}
	r.GuestSelections = g.Selections
	r.GuestInitialized = g.Initialized
}
