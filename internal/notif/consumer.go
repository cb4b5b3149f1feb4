// Package notif persists fan-out events as durable notification records.
package notif

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
)

// Consumer turns bus events into Notification records. It is a member
// of the notification-group consumer group; each event is handled by
// exactly one member, and redelivery after a crash is absorbed by
// keying the record on the event's natural identity.
type Consumer struct {
	repo   dbmongo.NotificationRepository
	logger *slog.Logger
}

func NewConsumer(repo dbmongo.NotificationRepository, logger *slog.Logger) *Consumer {
	return &Consumer{
		repo:   repo,
		logger: logger,
	}
}

// HandleEvent persists one event. Errors are returned to the consumer
// loop, which logs and skips: one bad event never blocks the stream.
func (c *Consumer) HandleEvent(ctx context.Context, event eventbus.Event) error {
	key, err := event.NotificationKey()
	if err != nil {
		return err
	}

	notification := &dbmongo.Notification{
		ID:           key,
		Type:         event.Type,
		UserID:       event.UserID,
		TargetUserID: event.TargetUserID,
		PostID:       event.PostID,
		CommentText:  event.CommentText,
		MessageID:    event.MessageID,
		StoryID:      event.StoryID,
		Content:      event.Content,
		Read:         false,
		CreatedAt:    time.Now().UTC(),
	}
	// Story events notify their own author.
	if notification.TargetUserID == "" {
		notification.TargetUserID = event.UserID
	}

	if err := c.repo.Upsert(ctx, notification); err != nil {
		return fmt.Errorf("failed to persist notification %s: %w", key, err)
	}

	c.logger.Info("notification stored",
		"type", notification.Type,
		"target_user_id", notification.TargetUserID,
		"id", notification.ID)
	return nil
}
