package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripfolio/travel-platform/internal/client"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/core/service"
	"github.com/tripfolio/travel-platform/internal/infrastructure/config"
	mongodb "github.com/tripfolio/travel-platform/internal/infrastructure/db/mongo"
	"github.com/tripfolio/travel-platform/internal/infrastructure/queue"
	"github.com/tripfolio/travel-platform/internal/travel/api"
	"github.com/tripfolio/travel-platform/pkg/logger"
)

func main() {
	cfg := config.LoadTravel()
	log := logger.Init(logger.Options{
		Service: "travel",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	travelRepo := mongodb.NewTravelRepository(db)
	if err := travelRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	identity := client.NewIdentityClient(cfg.IdentityURL, cfg.RPCTimeout)

	var audit ports.AuditPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := queue.NewAuditPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, 0, log)
		publisher.Start(ctx)
		defer func() { _ = publisher.Close() }()
		audit = publisher
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("audit stream enabled")
	}

	travel := service.NewTravelService(travelRepo, identity, audit, log)

	e := api.NewRouter(travel, db, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("travel service listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
