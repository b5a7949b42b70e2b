package ports

import (
	"context"

	"github.com/superapp/tool-portal/internal/core/domain"
)

type CatalogService interface {
	// List returns the full catalog, optionally filtered to one category.
	// An unknown non-empty category yields domain.ErrInvalidCategory.
	List(ctx context.Context, category domain.Category) ([]domain.Tool, error)
	// Create inserts a new, always-active tool and returns its id.
	Create(ctx context.Context, input domain.ToolInput) (int64, error)
	Update(ctx context.Context, id int64, input domain.ToolInput) error
	Delete(ctx context.Context, id int64) error
}
