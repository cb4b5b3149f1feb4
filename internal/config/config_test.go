package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "50051", cfg.Server.ChatServicePort)
	assert.Equal(t, "3000", cfg.Server.PostsServicePort)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "social-network", cfg.MongoDB.Database)

	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "notification-group", cfg.Kafka.NotificationGroup)
	assert.Equal(t, "story-group", cfg.Kafka.StoryGroup)
	assert.Equal(t, 10*time.Second, cfg.Kafka.PublishTimeout)

	assert.Equal(t, 24*time.Hour, cfg.Stories.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Stories.SweepInterval)
	assert.Equal(t, 100, cfg.Stories.SweepBatch)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("STORY_TTL", "1h")
	t.Setenv("CHAT_SERVICE_PORT", "7003")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, time.Hour, cfg.Stories.TTL)
	assert.Equal(t, "7003", cfg.Server.ChatServicePort)
}
