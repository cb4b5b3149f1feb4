// Package config loads service configuration from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server  ServerConfig
	MongoDB MongoConfig
	Kafka   KafkaConfig
	Stories StoriesConfig
	Logging LoggingConfig
}

// ServerConfig contains the listen ports of each service.
type ServerConfig struct {
	ChatServicePort  string `env:"CHAT_SERVICE_PORT,default=50051"`
	PostsServicePort string `env:"POSTS_SERVICE_PORT,default=3000"`
}

// MongoConfig contains the document store connection settings.
type MongoConfig struct {
	URI      string `env:"MONGODB_URI,default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_DATABASE,default=social-network"`
}

// KafkaConfig contains the event bus connection settings. Consumer group
// ids must stay stable across deployments so committed offsets survive
// a rollout.
type KafkaConfig struct {
	Brokers           []string      `env:"KAFKA_BROKERS,default=localhost:9092"`
	ClientID          string        `env:"KAFKA_CLIENT_ID,default=socialfeed"`
	NotificationGroup string        `env:"KAFKA_NOTIFICATION_GROUP,default=notification-group"`
	StoryGroup        string        `env:"KAFKA_STORY_GROUP,default=story-group"`
	PublishTimeout    time.Duration `env:"KAFKA_PUBLISH_TIMEOUT,default=10s"`
}

// StoriesConfig controls the story expiration sweep.
type StoriesConfig struct {
	TTL           time.Duration `env:"STORY_TTL,default=24h"`
	SweepInterval time.Duration `env:"STORY_SWEEP_INTERVAL,default=5m"`
	SweepBatch    int           `env:"STORY_SWEEP_BATCH,default=100"`
}

type LoggingConfig struct {
	Level string `env:"LOG_LEVEL,default=info"`
}

func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return cfg, nil
}
