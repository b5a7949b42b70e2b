package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/core/ports"
)

// CatalogService implements the admin-only catalog mutations.
type CatalogService struct {
	tools  ports.ToolRepository
	logger zerolog.Logger
}

func NewCatalogService(tools ports.ToolRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{tools: tools, logger: logger}
}

func (s *CatalogService) List(ctx context.Context, category domain.Category) ([]domain.Tool, error) {
	if category != "" && !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	return s.tools.List(ctx, category)
}

// Create inserts a new tool. New tools are always active.
func (s *CatalogService) Create(ctx context.Context, input domain.ToolInput) (int64, error) {
	if fields := input.Validate(); len(fields) > 0 {
		return 0, &domain.InvalidInputError{Fields: fields}
	}

	tool := &domain.Tool{
		Name:        input.Name,
		Category:    input.Category,
		URL:         input.URL,
		Description: input.Description,
		Icon:        input.Icon,
		Active:      true,
	}
	id, err := s.tools.Create(ctx, tool)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("tool create failed")
		return 0, err
	}

	s.logger.Info().Int64("tool_id", id).Str("name", input.Name).Str("category", string(input.Category)).Msg("tool created")
	return id, nil
}

// Update overwrites all mutable fields of an existing tool, including the
// active flag. Deactivation does not purge existing selections.
func (s *CatalogService) Update(ctx context.Context, id int64, input domain.ToolInput) error {
	if fields := input.Validate(); len(fields) > 0 {
		return &domain.InvalidInputError{Fields: fields}
	}

	tool := &domain.Tool{
		ID:          id,
		Name:        input.Name,
		Category:    input.Category,
		URL:         input.URL,
		Description: input.Description,
		Icon:        input.Icon,
		Active:      input.Active,
	}
	if err := s.tools.Update(ctx, tool); err != nil {
		return err
	}

	s.logger.Info().Int64("tool_id", id).Bool("active", input.Active).Msg("tool updated")
	return nil
}

// Delete removes a tool and, via the store's cascade, every selection
// referencing it. Deleting an unknown id is a no-op.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.tools.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("tool_id", id).Msg("tool delete failed")
		return err
	}
	s.logger.Info().Int64("tool_id", id).Msg("tool deleted")
	return nil
}
