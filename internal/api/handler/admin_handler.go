package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/superapp/tool-portal/internal/api/metrics"
	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/core/ports"
)

type AdminHandler struct {
	catalog ports.CatalogService
}

func NewAdminHandler(catalog ports.CatalogService) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

type toolRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=KNOWLEDGE LEARNING_SPACE MY_WORK_SPACE COMMUNITY NEW_FUNDS_AND_TALENTS"`
	URL         string `json:"url" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon,omitempty"`
	Active      bool   `json:"active,omitempty"`
}

func (r toolRequest) input() domain.ToolInput {
	return domain.ToolInput{
		Name:        r.Name,
		Category:    domain.Category(r.Category),
		URL:         r.URL,
		Description: r.Description,
		Icon:        r.Icon,
		Active:      r.Active,
	}
}

type listToolsResponse struct {
	Tools  []domain.Tool `json:"tools"`
	Filter string        `json:"filter,omitempty"`
}

// toolFormError echoes the submitted values back alongside the error so the
// admin form can be re-presented without losing input. Create-only: update
// failures intentionally render just the error envelope.
type toolFormError struct {
	Error string      `json:"error"`
	Form  toolRequest `json:"form"`
}

// List returns the full catalog, active and inactive.
//
// @Summary      List all tools
// @Tags         admin
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Success      200   {object}  listToolsResponse
// @Failure      403   {object}  map[string]string
// @Router       /admin/tools [get]
func (h *AdminHandler) List(c echo.Context) error {
	category := domain.Category(c.QueryParam("category"))
	tools, err := h.catalog.List(c.Request().Context(), category)
	if err != nil {
		return err
	}
	if tools == nil {
		tools = []domain.Tool{}
	}
	return c.JSON(http.StatusOK, listToolsResponse{Tools: tools, Filter: string(category)})
}

// Create adds a new tool to the catalog.
//
// @Summary      Create a tool
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      toolRequest  true  "Tool fields"
// @Success      201   {object}  map[string]int64
// @Failure      400   {object}  toolFormError
// @Failure      403   {object}  map[string]string
// @Router       /admin/tools [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req toolRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toolFormError{Error: err.Error(), Form: req})
	}

	id, err := h.catalog.Create(c.Request().Context(), req.input())
	if err != nil {
		// Whitespace-only fields pass the required tag but fail the trimmed
		// domain validation; they get the same form echo.
		var invalid *domain.InvalidInputError
		if errors.As(err, &invalid) {
			return c.JSON(http.StatusBadRequest, toolFormError{Error: invalid.Error(), Form: req})
		}
		return err
	}

	metrics.CatalogActionsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// Update mutates an existing tool, including its active flag.
//
// @Summary      Update a tool
// @Tags         admin
// @Accept       json
// @Param        id    path  int          true  "Tool id"
// @Param        body  body  toolRequest  true  "Tool fields"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/tools/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := toolID(c)
	if err != nil {
		return err
	}

	var req toolRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.catalog.Update(c.Request().Context(), id, req.input()); err != nil {
		return err
	}

	metrics.CatalogActionsTotal.WithLabelValues("update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a tool and every selection referencing it.
//
// @Summary      Delete a tool
// @Tags         admin
// @Param        id  path  int  true  "Tool id"
// @Success      204
// @Failure      403   {object}  map[string]string
// @Router       /admin/tools/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := toolID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogActionsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func toolID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid tool id")
	}
	return id, nil
}
