package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/internal/auth"
	apperrors "doctorsportal/internal/errors"
	"doctorsportal/internal/repository"
)

// AuthService handles token issue and revocation. There is no password step:
// a token is issued for any email that resolves to a signed-up user.
type AuthService interface {
	IssueToken(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context, rawToken string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// IssueToken signs an access token for the email, refusing when no user with
// that email exists.
func (s *authService) IssueToken(ctx context.Context, email string) (string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", apperrors.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	return s.jwtService.GenerateAccessToken(email)
}

// Logout blacklists the token's ID until the token would expire on its own.
func (s *authService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.jwtService.ValidateToken(rawToken)
	if err != nil {
		return apperrors.ErrForbidden
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.tokenStore.BlacklistAccessToken(ctx, claims.ID, ttl)
}
