package ports

import (
	"context"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// SignUpInput carries a validated signup request.
type SignUpInput struct {
	Username string
	Password string
	FullName string
	Role     domain.Role
}

// LoginResult is the successful outcome of Login.
type LoginResult struct {
	ID    int64
	Token string
}

// IdentityDirectory is the read-only user lookup surface. The travel service
// depends on this subset to verify record owners.
type IdentityDirectory interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// IdentityService is the full remote surface of the identity service,
// implemented by the in-process core and by the HTTP client.
type IdentityService interface {
	IdentityDirectory

	SignUp(ctx context.Context, in SignUpInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// GetUserRoleByID resolves the caller's current role. The gateway guard
	// calls this on every protected request, so it must stay cheap and
	// side-effect free.
	GetUserRoleByID(ctx context.Context, id int64) (domain.Role, error)
	// ValidateToken reports whether the token verifies. Malformed tokens
	// return false, never an error.
	ValidateToken(ctx context.Context, token string) (bool, error)
}
