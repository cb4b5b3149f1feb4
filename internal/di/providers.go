// Package di assembles each service with google/wire. The injector
// declarations live in wire.go; the generated bodies in wire_gen.go.
package di

import (
	"context"
	"log/slog"
	"os"

	"socialfeed/internal/config"
	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
	"socialfeed/internal/notif"
	"socialfeed/internal/posts"
	"socialfeed/internal/stories"

	chathandler "socialfeed/internal/chat/handler"
)

// ChatApp is the assembled chat delivery service.
type ChatApp struct {
	Config  *config.Config
	Logger  *slog.Logger
	Handler *chathandler.ChatHandler
}

// NotifApp is the assembled notification consumer: the group member on
// the notifications topic plus the handler that persists the feed.
type NotifApp struct {
	Config   *config.Config
	Logger   *slog.Logger
	Consumer *eventbus.Consumer
	Handler  *notif.Consumer
}

// StoryApp is the assembled story lifecycle service: the group member
// on the stories topic, the event handler and the expiration sweeper.
type StoryApp struct {
	Config   *config.Config
	Logger   *slog.Logger
	Consumer *eventbus.Consumer
	Manager  *stories.Manager
	Sweeper  *stories.Sweeper
}

// PostsApp is the assembled REST producer surface.
type PostsApp struct {
	Config  *config.Config
	Logger  *slog.Logger
	Handler *posts.Handler
}

func ProvideConfig() (*config.Config, error) {
	return config.Load(context.Background())
}

func ProvideLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func ProvideMongo(cfg *config.Config, logger *slog.Logger) (*dbmongo.MongoClient, func(), error) {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := mc.Close(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}
	return mc, cleanup, nil
}

func ProvidePublisher(cfg *config.Config, logger *slog.Logger) (eventbus.Publisher, func()) {
	pub := eventbus.NewKafkaPublisher(cfg)
	cleanup := func() {
		if err := pub.Close(); err != nil {
			logger.Error("kafka writer close failed", "error", err)
		}
	}
	return pub, cleanup
}

func ProvideNotificationConsumer(cfg *config.Config, logger *slog.Logger) (*eventbus.Consumer, func()) {
	c := eventbus.NewConsumer(cfg, eventbus.TopicNotifications, cfg.Kafka.NotificationGroup, logger)
	cleanup := func() {
		if err := c.Close(); err != nil {
			logger.Error("kafka reader close failed", "error", err)
		}
	}
	return c, cleanup
}

func ProvideStoryConsumer(cfg *config.Config, logger *slog.Logger) (*eventbus.Consumer, func()) {
	c := eventbus.NewConsumer(cfg, eventbus.TopicStories, cfg.Kafka.StoryGroup, logger)
	cleanup := func() {
		if err := c.Close(); err != nil {
			logger.Error("kafka reader close failed", "error", err)
		}
	}
	return c, cleanup
}

func ProvideStoryManager(repo dbmongo.StoryRepository, bus eventbus.Publisher, cfg *config.Config, logger *slog.Logger) *stories.Manager {
	return stories.NewManager(repo, bus, cfg.Stories.TTL, logger)
}

func ProvideSweeper(repo dbmongo.StoryRepository, bus eventbus.Publisher, cfg *config.Config, logger *slog.Logger) *stories.Sweeper {
	return stories.NewSweeper(repo, bus, cfg.Stories.SweepInterval, int64(cfg.Stories.SweepBatch), logger)
}

func ProvidePostsHandler(
	postRepo dbmongo.PostRepository,
	storyRepo dbmongo.StoryRepository,
	bus eventbus.Publisher,
	cfg *config.Config,
	logger *slog.Logger,
) *posts.Handler {
	return posts.NewHandler(postRepo, storyRepo, bus, cfg.Stories.TTL, logger)
}
