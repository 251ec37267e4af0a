package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tripfolio/travel-platform/internal/api/handler"
	"github.com/tripfolio/travel-platform/internal/api/middleware"
	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/core/service"
	"github.com/tripfolio/travel-platform/internal/health"
)

// Deps carries everything the gateway router needs. RoleCache and Redis may
// be nil; caching is then disabled and the readiness probe skips Redis.
type Deps struct {
	Identity  ports.IdentityService
	Travel    ports.TravelService
	Tokens    *service.TokenManager
	RoleCache middleware.RoleCache
	Redis     *redis.Client
	Log       zerolog.Logger
}

// NewRouter builds the externally-facing Echo instance: public auth routes,
// guarded travel routes with per-route role sets, probes, and metrics.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gateway"))

	authHandler := handler.NewAuthHandler(d.Identity)
	travelHandler := handler.NewTravelHandler(d.Travel)
	guard := middleware.Auth(d.Tokens, d.Identity, d.RoleCache)

	// Public auth surface.
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)

	// Self-only account lookup; the handler checks the path id against the
	// token subject.
	e.GET("/auth/user/:id", authHandler.GetUser, guard)

	travel := e.Group("/travel", guard)
	travel.POST("/create", travelHandler.Create, middleware.RBAC(domain.RoleAdmin))
	travel.GET("", travelHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleTourist))
	travel.GET("/:id", travelHandler.Get, middleware.RBAC(domain.RoleAdmin, domain.RoleTourist))
	travel.PUT("/:id", travelHandler.Update, middleware.RBAC(domain.RoleAdmin))
	travel.POST("/submit-revision/:id", travelHandler.SubmitRevision, middleware.RBAC(domain.RoleTourist))
	travel.POST("/approve-revision/:id", travelHandler.ApproveRevision, middleware.RBAC(domain.RoleAdmin))
	travel.POST("/reject-revision/:id", travelHandler.RejectRevision, middleware.RBAC(domain.RoleAdmin))
	travel.DELETE("/:id", travelHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	health.NewHandler(nil, d.Redis).Register(e)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
