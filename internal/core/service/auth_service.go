package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/superapp/tool-portal/internal/core/domain"
	"github.com/superapp/tool-portal/internal/core/ports"
)

// dummyHash is compared against on lookup miss so that "no such user" and
// "wrong password" cost the same and surface the same error.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portal-timing-equalizer"), bcrypt.DefaultCost)

// AuthService verifies login credentials against the user store.
type AuthService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Login looks the user up by exact email match and verifies the password
// against the stored bcrypt hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("credentials verified")
	return user, nil
}
