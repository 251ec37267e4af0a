package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripfolio/travel-platform/internal/core/service"
	"github.com/tripfolio/travel-platform/internal/identity/api"
	"github.com/tripfolio/travel-platform/internal/infrastructure/config"
	mongodb "github.com/tripfolio/travel-platform/internal/infrastructure/db/mongo"
	"github.com/tripfolio/travel-platform/pkg/logger"
)

func main() {
	cfg := config.LoadIdentity()
	log := logger.Init(logger.Options{
		Service: "identity",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	identity := service.NewIdentityService(userRepo, tokens, log)

	e := api.NewRouter(identity, db, nil, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("identity service listening")
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
