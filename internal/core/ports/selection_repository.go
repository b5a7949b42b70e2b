package ports

import (
	"context"

	"github.com/superapp/tool-portal/internal/core/domain"
)

// SelectionRepository defines persistence for user↔tool dashboard memberships.
type SelectionRepository interface {
	// ToolIDsForUser returns every tool id the user has selected, across all
	// categories, regardless of the tool's active flag.
	ToolIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	// ReplaceCategory atomically removes the user's memberships for every
	// tool in the category (active or not) and inserts one membership per
	// given id. Memberships in other categories are untouched. The whole
	// replace commits or none of it does.
	ReplaceCategory(ctx context.Context, userID int64, category domain.Category, toolIDs []int64) error
}
