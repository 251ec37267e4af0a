package ports

import (
	"context"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// UserRepository defines the credential store owned by the identity service.
type UserRepository interface {
	// Create persists a new user and returns it with its assigned id.
	// A duplicate username yields an AlreadyExists error.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
