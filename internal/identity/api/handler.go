// Package api exposes the identity core over the internal HTTP surface
// consumed by the gateway and the travel service.
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

type Handler struct {
	identity ports.IdentityService
}

func NewHandler(identity ports.IdentityService) *Handler {
	return &Handler{identity: identity}
}

func (h *Handler) SignUp(c echo.Context) error {
	var req rpc.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
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
	return c.JSON(http.StatusCreated, rpc.UserToPayload(user))
}

func (h *Handler) Login(c echo.Context) error {
	var req rpc.LoginRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
	}

	result, err := h.identity.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.LoginResponse{ID: result.ID, Token: result.Token})
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.identity.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.UserToPayload(user))
}

func (h *Handler) GetUserRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	role, err := h.identity.GetUserRoleByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.RolePayload{Role: string(role)})
}

func (h *Handler) ValidateToken(c echo.Context) error {
	var req rpc.ValidateTokenRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
	}

	valid, err := h.identity.ValidateToken(c.Request().Context(), req.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.ValidateTokenResponse{Valid: valid})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.E(domain.KindInvalidArgument, "invalid user id")
	}
	return id, nil
}
