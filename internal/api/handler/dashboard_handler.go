package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/superapp/tool-portal/internal/api/metrics"
	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/core/ports"
	"github.com/superapp/tool-portal/internal/infrastructure/session"
)

type DashboardHandler struct {
	dashboards ports.DashboardService
	selections ports.SelectionService
	sessions   *session.Manager
}

func NewDashboardHandler(dashboards ports.DashboardService, selections ports.SelectionService, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, selections: selections, sessions: sessions}
}

type selectionRequest struct {
	ToolIDs []string `json:"tool_ids"`
}

// View renders the personalized dashboard for the current principal.
//
// @Summary      View the dashboard
// @Tags         portal
// @Produce      json
// @Success      200   {object}  ports.DashboardView
// @Failure      401   {object}  map[string]string
// @Router       /portal/dashboard [get]
func (h *DashboardHandler) View(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	view, err := h.dashboards.View(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	// The first guest read may have populated default selections; persist
	// them so the next request sees the same set.
	if err := h.persistGuest(c, principal); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Select replaces the principal's selections for one category.
//
// @Summary      Set the selection for a category
// @Tags         portal
// @Accept       json
// @Param        category  path  string            true  "Category key"
// @Param        body      body  selectionRequest  true  "Requested tool ids"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /portal/categories/{category}/selection [put]
func (h *DashboardHandler) Select(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req selectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category := domain.Category(c.Param("category"))
	if err := h.selections.Reconcile(c.Request().Context(), principal, category, req.ToolIDs); err != nil {
		return err
	}

	if err := h.persistGuest(c, principal); err != nil {
		return err
	}

	metrics.SelectionUpdatesTotal.WithLabelValues(principalKind(principal)).Inc()
	return c.NoContent(http.StatusNoContent)
}

// persistGuest writes a guest principal's (possibly mutated) selections back
// to the session store. Authenticated principals persist through the catalog
// store instead, so this is a no-op for them.
func (h *DashboardHandler) persistGuest(c echo.Context, principal domain.Principal) error {
	guest, ok := principal.(*domain.Guest)
	if !ok {
		return nil
	}
	rec := ctxSession(c)
	if rec == nil {
		return nil
	}
	rec.SyncGuest(guest)
	return h.sessions.Save(c.Request().Context(), rec)
}

func principalKind(p domain.Principal) string {
	if _, ok := p.(*domain.Guest); ok {
		return "guest"
	}
	return "user"
}
