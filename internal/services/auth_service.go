package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ParthDhengle/ClipHub/internal/auth"
	"github.com/ParthDhengle/ClipHub/internal/identity"
	"github.com/ParthDhengle/ClipHub/internal/models"
	"github.com/ParthDhengle/ClipHub/internal/repository"
)

// AuthService handles account creation and the provider-token-for-session
// exchange.
type AuthService struct {
	provider identity.Provider
	users    repository.UserRepository
	tokens   *auth.TokenIssuer
	log      *zap.Logger
}

func NewAuthService(provider identity.Provider, users repository.UserRepository, tokens *auth.TokenIssuer, log *zap.Logger) *AuthService {
	return &AuthService{provider: provider, users: users, tokens: tokens, log: log}
}

// Signup registers the account with the identity provider, writes the
// directory record, and issues a session token. A directory write failure
// after the provider account exists leaves inconsistent state; there is no
// rollback (known gap).
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*models.User, string, error) {
	claims, err := s.provider.CreateUser(ctx, email, password, name)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		ID:          claims.Subject,
		Email:       email,
		Name:        name,
		Preferences: []string{},
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.log.Error("directory write failed after provider signup",
			zap.String("user_id", claims.Subject), zap.Error(err))
		return nil, "", fmt.Errorf("create directory record: %w", err)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies a provider token and exchanges it for a locally issued
// session token, creating the directory record on first sight.
func (s *AuthService) Login(ctx context.Context, providerToken string) (string, *models.User, error) {
	claims, err := s.provider.VerifyToken(ctx, providerToken)
	if err != nil {
		if errors.Is(err, identity.ErrForeignToken) {
			return "", nil, auth.ErrUnauthenticated
		}
		return "", nil, err
	}

	u, err := s.users.Get(ctx, claims.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		u = &models.User{
			ID:          claims.Subject,
			Email:       claims.Email,
			Name:        claims.Name,
			Preferences: []string{},
		}
		if err := s.users.Create(ctx, u); err != nil {
			return "", nil, fmt.Errorf("create directory record: %w", err)
		}
	} else if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(claims.Subject)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
