package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/pkg/logger"
)

// GoogleOAuth handles the Google identity federation flow: building the
// consent URL, exchanging the authorization code, and verifying the
// returned ID token against this service's client ID.
type GoogleOAuth struct {
	config *oauth2.Config
	logger logger.Logger
}

// GoogleIdentity is the verified subset of ID-token claims the service uses.
type GoogleIdentity struct {
	Email         string
	EmailVerified bool
}

// NewGoogleOAuth creates a new Google OAuth handler
func NewGoogleOAuth(clientID, clientSecret, redirectURI string, logger logger.Logger) *GoogleOAuth {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}

	return &GoogleOAuth{
		config: config,
		logger: logger,
	}
}

// Configured reports whether the federation flow can run at all.
func (o *GoogleOAuth) Configured() bool {
	return o.config.ClientID != "" && o.config.ClientSecret != "" && o.config.RedirectURL != ""
}

// GenerateAuthURL generates a URL for the user to authorize the application
func (o *GoogleOAuth) GenerateAuthURL(state string) string {
	return o.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode exchanges an authorization code for a verified identity.
func (o *GoogleOAuth) ExchangeCode(ctx context.Context, code string) (*GoogleIdentity, error) {
	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange code: %v", entity.ErrUnauthorized, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: missing id_token from Google", entity.ErrUnauthorized)
	}

	return o.VerifyIDToken(ctx, rawIDToken)
}

// VerifyIDToken validates a Google ID token (signature, expiry, audience)
// and extracts the identity claims.
func (o *GoogleOAuth) VerifyIDToken(ctx context.Context, rawIDToken string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, o.config.ClientID)
	if err != nil {
		o.logger.Error("Google token verification failed", "error", err)
		return nil, fmt.Errorf("%w: invalid Google token", entity.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)

	if email == "" {
		return nil, fmt.Errorf("%w: email not found in token", entity.ErrUnauthorized)
	}

	return &GoogleIdentity{
		Email:         email,
		EmailVerified: verified,
	}, nil
}
