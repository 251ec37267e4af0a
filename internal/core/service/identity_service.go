package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

const bcryptCost = 10

// IdentityService owns credential verification, token issuance and user/role
// lookup. Domain failures keep their kind end-to-end; unexpected store
// failures are logged and surfaced as opaque internal errors.
type IdentityService struct {
	repo   ports.UserRepository
	tokens *TokenManager
	logger zerolog.Logger
}

func NewIdentityService(repo ports.UserRepository, tokens *TokenManager, logger zerolog.Logger) *IdentityService {
	return &IdentityService{repo: repo, tokens: tokens, logger: logger}
}

func (s *IdentityService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.E(domain.KindInvalidArgument, "username and password are required")
	}
	if _, err := domain.ParseRole(string(in.Role)); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.E(domain.KindAlreadyExists, "username already exists")
	} else if domain.KindOf(err) != domain.KindNotFound {
		return nil, s.internal(err, "signup lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, s.internal(err, "password hash failed")
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
	})
	if err != nil {
		// A concurrent signup with the same username surfaces here.
		if domain.KindOf(err) == domain.KindAlreadyExists {
			return nil, err
		}
		return nil, s.internal(err, "signup create failed")
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user signed up")
	return created.Sanitized(), nil
}

func (s *IdentityService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.E(domain.KindNotFound, "invalid username")
		}
		return nil, s.internal(err, "login lookup failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.E(domain.KindInvalidArgument, "invalid password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, s.internal(err, "token issuance failed")
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{ID: user.ID, Token: token}, nil
}

func (s *IdentityService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, err
		}
		return nil, s.internal(err, "user lookup failed")
	}
	return user.Sanitized(), nil
}

func (s *IdentityService) GetUserRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return "", err
		}
		return "", s.internal(err, "role lookup failed")
	}
	return user.Role, nil
}

// ValidateToken never fails on a bad token; it reports false instead.
func (s *IdentityService) ValidateToken(ctx context.Context, token string) (bool, error) {
	if _, err := s.tokens.Verify(token); err != nil {
		return false, nil
	}
	return true, nil
}

// internal logs the real cause and returns an opaque internal error so store
// details never leak across the service boundary.
func (s *IdentityService) internal(err error, msg string) error {
	s.logger.Error().Err(err).Msg(msg)
	return domain.E(domain.KindInternal, "internal server error")
}

var _ ports.IdentityService = (*IdentityService)(nil)
