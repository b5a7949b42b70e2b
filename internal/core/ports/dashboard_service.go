package ports

import (
	"context"

	"github.com/superapp/tool-portal/internal/core/domain"
)

// CategoryTools is one dashboard grouping: the category's active tools plus
// the subset the principal has selected.
type CategoryTools struct {
	Key      domain.Category `json:"key"`
	Label    string          `json:"label"`
	Tools    []domain.Tool   `json:"tools"`
	Selected []domain.Tool   `json:"selected"`
}

// DashboardView is the full personalized dashboard for one principal.
type DashboardView struct {
	Categories []CategoryTools `json:"categories"`
	Guest      bool            `json:"guest"`
}

type DashboardService interface {
	// View returns the active catalog grouped by category with the
	// principal's current selections. The first call for an uninitialized
	// guest populates the guest's default selections in place.
	View(ctx context.Context, principal domain.Principal) (*DashboardView, error)
}
