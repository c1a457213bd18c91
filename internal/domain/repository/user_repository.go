package repository

import (
	"context"

	"flightwarehouse-service/internal/domain/entity"
)

// UserRepository defines the interface for application account operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error

	// GetOrCreateByEmail returns the existing account for a federated
	// identity, creating a password-less one on first sign-in.
	GetOrCreateByEmail(ctx context.Context, email string) (*entity.User, error)
}
