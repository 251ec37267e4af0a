package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// RoleCache is an optional read-through cache for resolved user roles. The
// gateway consults it before calling the identity service; a short TTL keeps
// role changes from being masked for long. Errors are returned to the caller
// as misses so a flaky cache never blocks authorization.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{client: client, ttl: ttl}
}

func roleKey(userID int64) string {
	return fmt.Sprintf("role:%d", userID)
}

// Get returns the cached role and whether it was present. A cache error or an
// unparseable stored value both read as a miss.
func (c *RoleCache) Get(ctx context.Context, userID int64) (domain.Role, bool) {
	val, err := c.client.Get(ctx, roleKey(userID)).Result()
	if err != nil {
		return "", false
	}
	role, err := domain.ParseRole(val)
	if err != nil {
		return "", false
	}
	return role, true
}

// Set stores the role for the configured TTL. Failures are ignored; the next
// lookup simply goes to the identity service again.
func (c *RoleCache) Set(ctx context.Context, userID int64, role domain.Role) {
	_ = c.client.Set(ctx, roleKey(userID), string(role), c.ttl).Err()
}
