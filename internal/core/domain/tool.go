package domain

import (
	"strings"
	"time"
)

// Tool is a catalog entry pointing at an external destination.
type Tool struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Active      bool     `json:"active"`
}

// ToolInput carries the admin-submitted fields for creating or updating a
// tool. Validate trims all string fields in place and returns the names of
// the fields that fail the contract: name, category, url and description are
// required and the category must belong to the closed set. Icon is optional.
type ToolInput struct {
	Name        string
	Category    Category
	URL         string
	Description string
	Icon        string
	Active      bool
}

func (in *ToolInput) Validate() []string {
	in.Name = strings.TrimSpace(in.Name)
	in.URL = strings.TrimSpace(in.URL)
	in.Description = strings.TrimSpace(in.Description)
	in.Icon = strings.TrimSpace(in.Icon)

	var bad []string
	if in.Name == "" {
		bad = append(bad, "name")
	}
	if !in.Category.Valid() {
		bad = append(bad, "category")
	}
	if in.URL == "" {
		bad = append(bad, "url")
	}
	if in.Description == "" {
		bad = append(bad, "description")
	}
	return bad
}

// Selection records that a user has chosen a tool for their dashboard.
// CreatedAt is diagnostic only; nothing orders on it.
type Selection struct {
	UserID    int64
	ToolID    int64
	CreatedAt time.Time
}
