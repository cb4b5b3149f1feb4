package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"socialfeed/internal/config"
)

// Handler processes one decoded event. A handler error is isolated to
// that event: the consumer logs it and moves on.
type Handler func(ctx context.Context, event Event) error

// Consumer is a consumer-group member on one topic. The broker contract
// is at-least-once: after a crash the group resumes from the last
// committed offset, which may redeliver the in-flight event, so
// handlers must persist idempotently.
type Consumer struct {
	reader *kafka.Reader
	logger *slog.Logger
}

func NewConsumer(cfg *config.Config, topic, groupID string, logger *slog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       1e6,
			CommitInterval: 0, // explicit commits
		}),
		logger: logger.With("topic", topic, "group", groupID),
	}
}

// Run consumes until ctx is cancelled. One bad event never stops the
// loop: malformed payloads are dropped, handler failures are logged,
// and the offset is committed either way so the group keeps making
// progress. Fetch failures back off and retry; the reader reconnects
// and resumes from the committed offset.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	c.logger.Info("consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, kafka.ErrGroupClosed) {
				c.logger.Info("consumer stopped")
				return nil
			}
			c.logger.Error("fetch failed, retrying", "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		event, err := ParseEvent(msg.Value)
		if err != nil {
			c.logger.Error("dropping malformed event",
				"error", err, "partition", msg.Partition, "offset", msg.Offset)
		} else if err := handler(ctx, event); err != nil {
			c.logger.Error("skipping event after handler failure",
				"error", err, "type", event.Type, "partition", msg.Partition, "offset", msg.Offset)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("offset commit failed", "error", err, "offset", msg.Offset)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
