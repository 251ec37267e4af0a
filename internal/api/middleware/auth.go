package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tripfolio/travel-platform/internal/api/metrics"
	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/service"
)

// Context keys the guard populates for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// RoleResolver resolves the caller's current role. In production this is the
// identity service client; the guard calls it on every protected request so
// role changes take effect without waiting for token expiry.
type RoleResolver interface {
	GetUserRoleByID(ctx context.Context, id int64) (domain.Role, error)
}

// RoleCache is an optional short-TTL cache in front of the resolver. A nil
// cache disables caching entirely.
type RoleCache interface {
	Get(ctx context.Context, userID int64) (domain.Role, bool)
	Set(ctx context.Context, userID int64, role domain.Role)
}

// Auth is the gateway guard. It verifies the bearer token locally, then
// resolves the subject's role remotely. Any failure in either step, including
// a resolver outage, denies the request with 401: a caller whose role cannot
// be established is not authenticated.
func Auth(tokens *service.TokenManager, resolver RoleResolver, cache RoleCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues("no_token").Inc()
				return err
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues("invalid_token").Inc()
				return err
			}

			role, err := resolveRole(c.Request().Context(), resolver, cache, userID)
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues("role_unresolved").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "could not resolve user role")
			}

			metrics.AuthDecisionsTotal.WithLabelValues("allowed").Inc()
			c.Set(ContextUserID, userID)
			c.Set(ContextRole, role)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

func resolveRole(ctx context.Context, resolver RoleResolver, cache RoleCache, userID int64) (domain.Role, error) {
	if cache != nil {
		if role, ok := cache.Get(ctx, userID); ok {
			metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
			return role, nil
		}
		metrics.RoleCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	role, err := resolver.GetUserRoleByID(ctx, userID)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RoleLookupDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	if cache != nil {
		cache.Set(ctx, userID, role)
	}
	return role, nil
}
