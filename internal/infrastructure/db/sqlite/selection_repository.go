package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/superapp/tool-portal/internal/core/domain"
)

type SelectionRepository struct {
	db *sql.DB
}

func NewSelectionRepository(db *sql.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

func (r *SelectionRepository) ToolIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tool_id FROM user_tool_selections WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("selected tool ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplaceCategory swaps the user's memberships for one category in a single
// transaction: every membership whose tool belongs to the category is removed
// (its active flag is irrelevant here), then one row per given id is
// inserted. A concurrent reader sees either the old set or the new set,
// never the gap in between.
func (r *SelectionRepository) ReplaceCategory(ctx context.Context, userID int64, category domain.Category, toolIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM user_tool_selections
		 WHERE user_id = ? AND tool_id IN (SELECT id FROM tools WHERE category = ?)`,
		userID, category); err != nil {
		return fmt.Errorf("clear category selections: %w", err)
	}

	for _, toolID := range toolIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO user_tool_selections (user_id, tool_id) VALUES (?, ?)`,
			userID, toolID); err != nil {
			return fmt.Errorf("insert selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}
