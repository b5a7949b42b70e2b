package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/core/ports"
)

// DashboardService assembles the personalized dashboard: the active catalog
// grouped by category, intersected with the principal's selection set.
type DashboardService struct {
	tools      ports.ToolRepository
	selections ports.SelectionRepository
	logger     zerolog.Logger
}

func NewDashboardService(tools ports.ToolRepository, selections ports.SelectionRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{tools: tools, selections: selections, logger: logger}
}

// View builds the dashboard for the given principal. Inactive tools are
// filtered out before the selection intersection, so a membership that points
// at a deactivated tool simply does not render. The first read for an
// uninitialized guest populates the guest's defaults in place; the caller is
// responsible for persisting the mutated session afterwards.
func (s *DashboardService) View(ctx context.Context, principal domain.Principal) (*ports.DashboardView, error) {
	active, err := s.tools.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var selected map[int64]bool
	guest := false

	switch p := principal.(type) {
	case domain.Authenticated:
		ids, err := s.selections.ToolIDsForUser(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		selected = make(map[int64]bool, len(ids))
		for _, id := range ids {
			selected[id] = true
		}
	case *domain.Guest:
		guest = true
		if !p.Initialized {
			initGuestDefaults(p, active)
			s.logger.Debug().Int("defaults", len(p.Selections)).Msg("guest selections initialized")
		}
		selected = p.SelectionSet()
	default:
		return nil, domain.ErrUnauthenticated
	}

	byCategory := make(map[domain.Category][]domain.Tool, len(domain.Categories))
	for _, tool := range active {
		byCategory[tool.Category] = append(byCategory[tool.Category], tool)
	}

	view := &ports.DashboardView{Guest: guest, Categories: make([]ports.CategoryTools, 0, len(domain.Categories))}
	for _, info := range domain.Categories {
		tools := byCategory[info.Key]
		if tools == nil {
			tools = []domain.Tool{}
		}
		sel := make([]domain.Tool, 0, len(tools))
		for _, tool := range tools {
			if selected[tool.ID] {
				sel = append(sel, tool)
			}
		}
		view.Categories = append(view.Categories, ports.CategoryTools{
			Key:      info.Key,
			Label:    info.Label,
			Tools:    tools,
			Selected: sel,
		})
	}

	return view, nil
}

// initGuestDefaults pre-selects one tool per category: the first active tool
// under (category asc, name asc) ordering, which is exactly the order
// ListActive returns.
func initGuestDefaults(g *domain.Guest, active []domain.Tool) {
	set := make(map[int64]bool)
	seen := make(map[domain.Category]bool)
	for _, tool := range active {
		if !seen[tool.Category] {
			seen[tool.Category] = true
			set[tool.ID] = true
		}
	}
	g.SetSelections(set)
}
