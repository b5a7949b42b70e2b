package domain

import "sort"

// Principal is the resolved identity driving authorization for a request.
// It is a closed sum: either an Authenticated user or a *Guest. The absence
// of a principal (nil) means the session is unestablished. Modelling this as
// one value rules out the "user and guest both set" state by construction.
type Principal interface {
	principal()
}

// Authenticated identifies a logged-in user.
type Authenticated struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (Authenticated) principal() {}

// IsAdmin reports whether the principal carries the admin role.
func (a Authenticated) IsAdmin() bool { return a.Role == RoleAdmin }

// Guest is an anonymous principal whose tool selections live only in session
// state. Selections stays nil until the first dashboard read populates the
// per-category defaults; Initialized distinguishes "no defaults yet" from
// "everything deselected".
type Guest struct {
	Selections  []int64
	Initialized bool
}

func (*Guest) principal() {}

// SelectionSet returns the guest's selections as a set.
func (g *Guest) SelectionSet() map[int64]bool {
	set := make(map[int64]bool, len(g.Selections))
	for _, id := range g.Selections {
		set[id] = true
	}
	return set
}

// SetSelections replaces the guest's selections with the given set, stored
// sorted so session payloads stay deterministic.
func (g *Guest) SetSelections(set map[int64]bool) {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	g.Selections = ids
	g.Initialized = true
}
