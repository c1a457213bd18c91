package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
	"flightwarehouse-service/internal/infrastructure/auth"
	"flightwarehouse-service/internal/infrastructure/oauth"
	"flightwarehouse-service/pkg/logger"
)

// AuthService handles local credential login, Google identity federation
// and bearer-token verification for the API.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	google *oauth.GoogleOAuth
	logger logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	google *oauth.GoogleOAuth,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		google: google,
		logger: logger,
	}
}

// Login verifies a local email/password pair and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}
	if user.PasswordHash == nil {
		// Federated account without a local password.
		return "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}
	return s.tokens.CreateAccessToken(user.Email)
}

// GoogleAuthURL builds the Google consent URL.
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.google.Configured() {
		return "", fmt.Errorf("%w: Google OAuth is not configured", entity.ErrConfiguration)
	}
	return s.google.GenerateAuthURL(state), nil
}

// GoogleExchange exchanges an authorization code for a verified Google
// identity, provisions the account on first sign-in, and issues an access
// token.
func (s *AuthService) GoogleExchange(ctx context.Context, code string) (string, error) {
	if !s.google.Configured() {
		return "", fmt.Errorf("%w: Google OAuth is not configured", entity.ErrConfiguration)
	}

	identity, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return "", err
	}
	if !identity.EmailVerified {
		return "", fmt.Errorf("%w: email not verified", entity.ErrUnauthorized)
	}

	user, err := s.users.GetOrCreateByEmail(ctx, identity.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info("Federated sign-in", "email", user.Email)
	return s.tokens.CreateAccessToken(user.Email)
}

// UserFromToken verifies a bearer token and loads its account.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*entity.User, error) {
	subject, err := s.tokens.SubjectFromToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", entity.ErrUnauthorized)
	}
	return user, nil
}
