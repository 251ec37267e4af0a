package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// RBAC admits only callers whose resolved role is in the allowed set. It runs
// after Auth and is the gateway's coarse check; the downstream services
// re-apply the fine-grained rules themselves.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
