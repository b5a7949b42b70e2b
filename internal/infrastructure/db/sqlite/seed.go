package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/superapp/tool-portal/internal/core/domain"
)

// Seed provisions the development fixtures: two accounts, the starter
// catalog, and default selections for the regular user. Each block only runs
// when its table is empty, so restarting the server never duplicates rows.
// The passwords below are development fixtures, not production credentials.
func Seed(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	if err := seedUsers(ctx, db, logger); err != nil {
		return err
	}
	if err := seedTools(ctx, db, logger); err != nil {
		return err
	}
	return seedSelections(ctx, db, logger)
}

func seedUsers(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := []struct {
		name, email, password, role string
	}{
		{"Admin User", "admin@example.com", "AdminPass123!", domain.RoleAdmin},
		{"Regular User", "user@example.com", "UserPass123!", domain.RoleUser},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)`,
			u.name, u.email, string(hash), u.role); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	logger.Info().Int("users", len(users)).Msg("seeded accounts")
	return nil
}

func seedTools(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tools`).Scan(&count); err != nil {
		return fmt.Errorf("count tools: %w", err)
	}
	if count > 0 {
		return nil
	}

	tools := []struct {
		name        string
		category    domain.Category
		url         string
		description string
		icon        string
	}{
		{"ReliefWeb", domain.CategoryKnowledge, "https://reliefweb.int", "Humanitarian updates and analysis.", "🌍"},
		{"World Bank Data", domain.CategoryKnowledge, "https://data.worldbank.org", "Global development indicators.", "📊"},
		{"Coursera", domain.CategoryLearningSpace, "https://www.coursera.org", "Online courses for professional growth.", "🎓"},
		{"Khan Academy", domain.CategoryLearningSpace, "https://www.khanacademy.org", "Free educational content and lessons.", "📘"},
		{"Trello", domain.CategoryMyWorkSpace, "https://trello.com", "Task management and collaboration boards.", "✅"},
		{"Google Drive", domain.CategoryMyWorkSpace, "https://drive.google.com", "Cloud file storage and collaboration.", "🗂️"},
		{"Slack", domain.CategoryCommunity, "https://slack.com", "Community and team communication.", "💬"},
		{"LinkedIn Groups", domain.CategoryCommunity, "https://www.linkedin.com/groups", "Professional networking communities.", "🤝"},
		{"Devex Funding", domain.CategoryNewFundsAndTalent, "https://www.devex.com/funding", "Development funding opportunities.", "💡"},
		{"Impactpool", domain.CategoryNewFundsAndTalent, "https://www.impactpool.org", "Social impact jobs and talent portal.", "🚀"},
	}
	for _, t := range tools {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO tools (name, category, url, description, icon, is_active) VALUES (?, ?, ?, ?, ?, 1)`,
			t.name, t.category, t.url, t.description, t.icon); err != nil {
			return fmt.Errorf("seed tool %s: %w", t.name, err)
		}
	}

	logger.Info().Int("tools", len(tools)).Msg("seeded catalog")
	return nil
}

// seedSelections pre-selects the first active tool of each category (by
// category then name, the same ordering guests default to) for the regular
// user, so a fresh install renders a populated dashboard.
func seedSelections(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	var userID int64
	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, "user@example.com").Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("find seed user: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_tool_selections WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return fmt.Errorf("count selections: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, category FROM tools WHERE is_active = 1 ORDER BY category, name`)
	if err != nil {
		return fmt.Errorf("list active tools: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var firstPerCategory []int64
	for rows.Next() {
		var (
			id       int64
			category string
		)
		if err := rows.Scan(&id, &category); err != nil {
			return fmt.Errorf("scan seed tool: %w", err)
		}
		if !seen[category] {
			seen[category] = true
			firstPerCategory = append(firstPerCategory, id)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, toolID := range firstPerCategory {
		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO user_tool_selections (user_id, tool_id) VALUES (?, ?)`,
			userID, toolID); err != nil {
			return fmt.Errorf("seed selection: %w", err)
		}
	}

	logger.Info().Int64("user_id", userID).Int("selections", len(firstPerCategory)).Msg("seeded default selections")
	return nil
}
