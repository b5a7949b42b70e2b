package ports

import (
	"context"

	"github.com/superapp/tool-portal/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns the matching user. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
