package ports

import (
	"context"

	"github.com/superapp/tool-portal/internal/core/domain"
)

type SelectionService interface {
	// Reconcile replaces the principal's selections for one category with the
	// requested ids, validated against that category's active tools. Entries
	// that fail integer coercion or reference inactive, deleted or
	// foreign-category tools are dropped silently. Selections in other
	// categories are never touched.
	Reconcile(ctx context.Context, principal domain.Principal, category domain.Category, requestedIDs []string) error
}
