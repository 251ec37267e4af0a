// Package client holds the HTTP clients the gateway and travel service use
// to reach the other internal services. Each client implements the matching
// ports interface so callers never see the transport.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

// IdentityClient calls the identity service over internal HTTP.
type IdentityClient struct {
	rpc *rpc.Client
}

func NewIdentityClient(baseURL string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{rpc: rpc.NewClient(baseURL, timeout)}
}

func (c *IdentityClient) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	var payload rpc.UserPayload
	err := c.rpc.Do(ctx, http.MethodPost, "/internal/v1/signup", nil, rpc.SignUpRequest{
		Username: in.Username,
		Password: in.Password,
		FullName: in.FullName,
		Role:     string(in.Role),
	}, &payload)
	if err != nil {
		return nil, err
	}
	return rpc.PayloadToUser(payload), nil
}

func (c *IdentityClient) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	var resp rpc.LoginResponse
	err := c.rpc.Do(ctx, http.MethodPost, "/internal/v1/login", nil, rpc.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{ID: resp.ID, Token: resp.Token}, nil
}

func (c *IdentityClient) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var payload rpc.UserPayload
	if err := c.rpc.Do(ctx, http.MethodGet, fmt.Sprintf("/internal/v1/users/%d", id), nil, nil, &payload); err != nil {
		return nil, err
	}
	return rpc.PayloadToUser(payload), nil
}

func (c *IdentityClient) GetUserRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	var payload rpc.RolePayload
	if err := c.rpc.Do(ctx, http.MethodGet, fmt.Sprintf("/internal/v1/users/%d/role", id), nil, nil, &payload); err != nil {
		return "", err
	}
	return domain.ParseRole(payload.Role)
}

func (c *IdentityClient) ValidateToken(ctx context.Context, token string) (bool, error) {
	var resp rpc.ValidateTokenResponse
	err := c.rpc.Do(ctx, http.MethodPost, "/internal/v1/tokens/validate", nil, rpc.ValidateTokenRequest{Token: token}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Valid, nil
}

var _ ports.IdentityService = (*IdentityClient)(nil)
