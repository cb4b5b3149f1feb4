package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"socialfeed/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	app, cleanup, err := di.InitializeNotificationService()
	if err != nil {
		log.Fatalf("Failed to initialize notification consumer: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Consumer.Run(ctx, app.Handler.HandleEvent); err != nil {
		log.Fatalf("Consumer stopped with error: %v", err)
	}
	app.Logger.Info("notification consumer stopped")
}
