package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/core/ports"
)

// SelectionService reconciles a submitted per-category selection against the
// active catalog. Each call touches exactly one category of one principal's
// memberships; everything else is left alone.
type SelectionService struct {
	tools      ports.ToolRepository
	selections ports.SelectionRepository
	logger     zerolog.Logger
}

func NewSelectionService(tools ports.ToolRepository, selections ports.SelectionRepository, logger zerolog.Logger) *SelectionService {
	return &SelectionService{tools: tools, selections: selections, logger: logger}
}

// Reconcile applies a category-scoped replace of the principal's selections.
//
// The requested ids are coerced to integers and intersected with a fresh read
// of the category's active tool ids; entries that fail coercion or reference
// inactive, deleted or foreign-category tools are dropped silently so stale
// client forms never turn into errors. For an authenticated principal the
// delete-then-insert runs in one transaction; for a guest the ephemeral set
// is rewritten in place and the caller persists the session.
func (s *SelectionService) Reconcile(ctx context.Context, principal domain.Principal, category domain.Category, requestedIDs []string) error {
	if !category.Valid() {
		return domain.ErrInvalidCategory
	}

	validIDs, err := s.tools.ActiveIDs(ctx, category)
	if err != nil {
		return err
	}
	validSet := make(map[int64]bool, len(validIDs))
	for _, id := range validIDs {
		validSet[id] = true
	}

	kept := make(map[int64]bool, len(requestedIDs))
	keep := make([]int64, 0, len(requestedIDs))
	for _, raw := range requestedIDs {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || !validSet[id] || kept[id] {
			continue
		}
		kept[id] = true
		keep = append(keep, id)
	}

	switch p := principal.(type) {
	case domain.Authenticated:
		if err := s.selections.ReplaceCategory(ctx, p.ID, category, keep); err != nil {
			s.logger.Error().Err(err).Int64("user_id", p.ID).Str("category", string(category)).Msg("selection replace failed")
			return err
		}
		s.logger.Info().Int64("user_id", p.ID).Str("category", string(category)).Int("selected", len(keep)).Msg("selections reconciled")
	case *domain.Guest:
		current := p.SelectionSet()
		// Only the category's currently-active ids are cleared; an id that
		// was selected while active and has since been deactivated survives,
		// mirroring the durable store's behavior on deactivation.
		for _, id := range validIDs {
			delete(current, id)
		}
		for _, id := range keep {
			current[id] = true
		}
		p.SetSelections(current)
		s.logger.Info().Str("category", string(category)).Int("selected", len(keep)).Msg("guest selections reconciled")
	default:
		return domain.ErrUnauthenticated
	}

	return nil
}
