package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

// AuthHandler fronts the identity service for account signup, login, and
// self-lookup.
type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	user, err := h.identity.SignUp(c.Request().Context(), ports.SignUpInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Role:     role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.identity.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":    result.ID,
		"token": result.Token,
	})
}

// GetUser returns the caller's own account. The path id must match the
// verified token subject; users cannot read each other's accounts.
func (h *AuthHandler) GetUser(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if id != who.UserID {
		return domain.E(domain.KindPermissionDenied, "cannot access another user's account")
	}

	user, err := h.identity.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
