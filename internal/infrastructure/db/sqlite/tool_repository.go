package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/superapp/tool-portal/internal/core/domain"
)

type ToolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

const toolColumns = `id, name, category, url, description, icon, is_active`

func (r *ToolRepository) ListActive(ctx context.Context) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+toolColumns+` FROM tools WHERE is_active = 1 ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("list active tools: %w", err)
	}
	defer rows.Close()
	return scanTools(rows)
}

func (r *ToolRepository) List(ctx context.Context, category domain.Category) ([]domain.Tool, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category == "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+toolColumns+` FROM tools ORDER BY category, is_active DESC, name`)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+toolColumns+` FROM tools WHERE category = ? ORDER BY is_active DESC, name`, category)
	}
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	return scanTools(rows)
}

func (r *ToolRepository) ActiveIDs(ctx context.Context, category domain.Category) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM tools WHERE category = ? AND is_active = 1`, category)
	if err != nil {
		return nil, fmt.Errorf("active tool ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tool id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ToolRepository) Create(ctx context.Context, tool *domain.Tool) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tools (name, category, url, description, icon, is_active) VALUES (?, ?, ?, ?, ?, ?)`,
		tool.Name, tool.Category, tool.URL, tool.Description, nullable(tool.Icon), boolToInt(tool.Active))
	if err != nil {
		return 0, fmt.Errorf("insert tool: %w", err)
	}
	return res.LastInsertId()
}

func (r *ToolRepository) Update(ctx context.Context, tool *domain.Tool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tools SET name = ?, category = ?, url = ?, description = ?, icon = ?, is_active = ? WHERE id = ?`,
		tool.Name, tool.Category, tool.URL, tool.Description, nullable(tool.Icon), boolToInt(tool.Active), tool.ID)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tool rows: %w", err)
	}
	if n == 0 {
		return domain.ErrToolNotFound
	}
	return nil
}

// Delete removes the tool row; ON DELETE CASCADE takes the selection rows
// with it. Unknown ids affect zero rows and return nil.
func (r *ToolRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tools WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}

func scanTools(rows *sql.Rows) ([]domain.Tool, error) {
	var tools []domain.Tool
	for rows.Next() {
		var (
			t      domain.Tool
			icon   sql.NullString
			active int
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.URL, &t.Description, &icon, &active); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		t.Icon = icon.String
		t.Active = active != 0
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
