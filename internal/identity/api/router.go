package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/health"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

// NewRouter builds the Echo instance for the identity service. The surface is
// internal only; the gateway is the sole expected caller.
func NewRouter(identity ports.IdentityService, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = rpc.NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	h := NewHandler(identity)

	v1 := e.Group("/internal/v1")
	v1.POST("/signup", h.SignUp)
	v1.POST("/login", h.Login)
	v1.GET("/users/:id", h.GetUser)
	v1.GET("/users/:id/role", h.GetUserRole)
	v1.POST("/tokens/validate", h.ValidateToken)

	health.NewHandler(db, rdb).Register(e)

	return e
}
