package main

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"socialfeed/internal/di"
)

// The story service runs two loops: the consumer-group member handling
// STORY_CREATED and STORY_EXPIRED events, and the periodic sweep that
// deletes expired stories and publishes their expiration cascades.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	app, cleanup, err := di.InitializeStoryService()
	if err != nil {
		log.Fatalf("Failed to initialize story service: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := app.Sweeper.Run(ctx); err != nil {
			app.Logger.Error("sweeper stopped with error", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := app.Consumer.Run(ctx, app.Manager.HandleEvent); err != nil {
			app.Logger.Error("consumer stopped with error", "error", err)
		}
		stop()
	}()

	wg.Wait()
	app.Logger.Info("story service stopped")
}
