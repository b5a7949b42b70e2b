package ports

import (
	"context"

	"github.com/superapp/tool-portal/internal/core/domain"
)

// ToolRepository defines persistence operations for the catalog.
type ToolRepository interface {
	// ListActive returns active tools ordered by category then name.
	ListActive(ctx context.Context) ([]domain.Tool, error)
	// List returns every tool, active and inactive, for the admin surface.
	// With a category filter the order is is_active desc then name; without,
	// category then is_active desc then name.
	List(ctx context.Context, category domain.Category) ([]domain.Tool, error)
	// ActiveIDs returns the ids of active tools in the given category.
	ActiveIDs(ctx context.Context, category domain.Category) ([]int64, error)
	Create(ctx context.Context, tool *domain.Tool) (int64, error)
	// Update overwrites all mutable fields. Returns domain.ErrToolNotFound
	// when the id does not exist.
	Update(ctx context.Context, tool *domain.Tool) error
	// Delete removes a tool; deleting an unknown id is a no-op. Selection
	// rows referencing the tool are removed by the store's cascade.
	Delete(ctx context.Context, id int64) error
}
