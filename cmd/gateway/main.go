package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripfolio/travel-platform/internal/api"
	"github.com/tripfolio/travel-platform/internal/api/middleware"
	"github.com/tripfolio/travel-platform/internal/client"
	"github.com/tripfolio/travel-platform/internal/core/service"
	"github.com/tripfolio/travel-platform/internal/infrastructure/config"
	redisdb "github.com/tripfolio/travel-platform/internal/infrastructure/db/redis"
	"github.com/tripfolio/travel-platform/pkg/logger"
)

func main() {
	cfg := config.LoadGateway()
	log := logger.Init(logger.Options{
		Service: "gateway",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	identity := client.NewIdentityClient(cfg.IdentityURL, cfg.RPCTimeout)
	travel := client.NewTravelClient(cfg.TravelURL, cfg.RPCTimeout)
	tokens := service.NewTokenManager(cfg.JWTSecret, 0)

	deps := api.Deps{
		Identity: identity,
		Travel:   travel,
		Tokens:   tokens,
		Log:      log,
	}

	// The role cache is opt-in; with a zero TTL every protected request
	// resolves the role against the identity service.
	var roleCache middleware.RoleCache
	if cfg.RoleCacheTTL > 0 {
		rdb, err := redisdb.Connect(context.Background(), redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer func() { _ = rdb.Close() }()
		roleCache = redisdb.NewRoleCache(rdb, cfg.RoleCacheTTL)
		deps.Redis = rdb
		log.Info().Dur("ttl", cfg.RoleCacheTTL).Msg("role cache enabled")
	}
	deps.RoleCache = roleCache

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
