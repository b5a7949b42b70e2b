package session

import (
	"testing"

	"github.com/superapp/tool-portal/internal/core/domain"
)

func TestRecord_Principal(t *testing.T) {
	user := &domain.User{ID: 3, Name: "Kim", Email: "kim@example.com", Role: domain.RoleAdmin}

	p := NewAuthenticated(user).Principal()
	auth, ok := p.(domain.Authenticated)
	if !ok {
		t.Fatalf("expected Authenticated, got %T", p)
	}
	if auth.ID != 3 || !auth.IsAdmin() {
		t.Fatalf("unexpected principal: %+v", auth)
	}

	p = NewGuest().Principal()
	guest, ok := p.(*domain.Guest)
	if !ok {
		t.Fatalf("expected *Guest, got %T", p)
	}
	if guest.Initialized || len(guest.Selections) != 0 {
		t.Fatalf("fresh guest must be uninitialized: %+v", guest)
	}

	if p := (&Record{Kind: "robot"}).Principal(); p != nil {
		t.Fatalf("unknown kind must resolve to nil, got %T", p)
	}
}

func TestRecord_SyncGuest(t *testing.T) {
	rec := NewGuest()
	rec.SyncGuest(&domain.Guest{Selections: []int64{1, 2}, Initialized: true})
	if !rec.GuestInitialized || len(rec.GuestSelections) != 2 {
		t.Fatalf("guest state not copied: %+v", rec)
	}

	// SyncGuest never overwrites an authenticated record.
	authRec := NewAuthenticated(&domain.User{ID: 1, Role: domain.RoleUser})
	authRec.SyncGuest(&domain.Guest{Selections: []int64{9}, Initialized: true})
	if authRec.GuestInitialized || authRec.GuestSelections != nil {
		t.Fatalf("authenticated record mutated: %+v", authRec)
	}
}
