package ports

import (
	"context"

	"github.com/superapp/tool-portal/internal/core/domain"
)

// UserRepository defines persistence for provisioned accounts.
type UserRepository interface {
	// FindByEmail looks a user up by exact email match.
	// Returns domain.ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
