// Package config loads per-binary configuration from environment variables
// using go-envconfig. Each service has its own struct; shared dependency
// settings live in the embedded sub-structs.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=travel_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type KafkaConfig struct {
	// Brokers empty disables the audit stream.
	Brokers []string `env:"KAFKA_BROKERS"`
	Topic   string   `env:"KAFKA_AUDIT_TOPIC, default=travel-audit"`
}

// GatewayConfig configures the externally-facing gateway.
type GatewayConfig struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	IdentityURL string        `env:"IDENTITY_URL, default=http://localhost:8081"`
	TravelURL   string        `env:"TRAVEL_URL,   default=http://localhost:8082"`
	RPCTimeout  time.Duration `env:"RPC_TIMEOUT,  default=10s"`

	// RoleCacheTTL > 0 enables the Redis role cache in front of the
	// per-request role lookup. The default keeps lookups fully fresh.
	RoleCacheTTL time.Duration `env:"ROLE_CACHE_TTL, default=0s"`

	Redis RedisConfig
}

// IdentityConfig configures the identity service.
type IdentityConfig struct {
	Port      string        `env:"PORT,      default=8081"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	Mongo MongoConfig
}

// TravelConfig configures the travel service.
type TravelConfig struct {
	Port     string `env:"PORT,      default=8082"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	IdentityURL string        `env:"IDENTITY_URL, default=http://localhost:8081"`
	RPCTimeout  time.Duration `env:"RPC_TIMEOUT,  default=10s"`

	Mongo MongoConfig
	Kafka KafkaConfig
}

func LoadGateway() *GatewayConfig {
	var cfg GatewayConfig
	load(&cfg)
	return &cfg
}

func LoadIdentity() *IdentityConfig {
	var cfg IdentityConfig
	load(&cfg)
	return &cfg
}

func LoadTravel() *TravelConfig {
	var cfg TravelConfig
	load(&cfg)
	return &cfg
}

func load(target any) {
	if err := envconfig.Process(context.Background(), target); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
}
