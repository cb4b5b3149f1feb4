package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"socialfeed/internal/config"
)

// Publisher puts events onto a named topic. Publish failures are
// surfaced to the caller; retry is the caller's policy decision.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
}

type KafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

func NewKafkaPublisher(cfg *config.Config) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
		timeout: cfg.Kafka.PublishTimeout,
	}
}

// Publish writes one event with a bounded timeout. The message key is
// the recipient id, which pins all of one user's events to a single
// partition and preserves their order.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   event.PartitionKey(),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event to %s: %w", event.Type, topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
