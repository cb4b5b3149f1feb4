//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"socialfeed/internal/chat/presence"
	"socialfeed/internal/chat/service"
	"socialfeed/internal/dbmongo"
	"socialfeed/internal/notif"

	chathandler "socialfeed/internal/chat/handler"
)

func InitializeChatService() (*ChatApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideMongo,
		ProvidePublisher,
		dbmongo.NewMessageRepository,
		presence.NewRegistry,
		service.NewChatService,
		chathandler.NewChatHandler,
		wire.Struct(new(ChatApp), "*"),
	)
	return nil, nil, nil
}

func InitializeNotificationService() (*NotifApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideMongo,
		ProvideNotificationConsumer,
		dbmongo.NewNotificationRepository,
		notif.NewConsumer,
		wire.Struct(new(NotifApp), "*"),
	)
	return nil, nil, nil
}

func InitializeStoryService() (*StoryApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideMongo,
		ProvidePublisher,
		ProvideStoryConsumer,
		dbmongo.NewStoryRepository,
		ProvideStoryManager,
		ProvideSweeper,
		wire.Struct(new(StoryApp), "*"),
	)
	return nil, nil, nil
}

func InitializePostsService() (*PostsApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideMongo,
		ProvidePublisher,
		dbmongo.NewPostRepository,
		dbmongo.NewStoryRepository,
		ProvidePostsHandler,
		wire.Struct(new(PostsApp), "*"),
	)
	return nil, nil, nil
}
