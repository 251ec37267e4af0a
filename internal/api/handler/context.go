package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripfolio/travel-platform/internal/api/middleware"
	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

// caller extracts the identity the Auth guard injected. An empty result means
// the middleware never ran, which on a protected route is a wiring bug; it is
// still reported as 401 rather than leaking a 500.
func caller(c echo.Context) (ports.AuthContext, error) {
	userID, _ := c.Get(middleware.ContextUserID).(int64)
	role, _ := c.Get(middleware.ContextRole).(domain.Role)
	if userID <= 0 || role == "" {
		return ports.AuthContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.AuthContext{UserID: userID, Role: role}, nil
}

// pathID parses the :id path segment as a positive integer.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.E(domain.KindInvalidArgument, "id must be a positive integer")
	}
	return id, nil
}
