// Package service implements the chat delivery path: durable persist,
// notification fan-out, then best-effort live push.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"socialfeed/internal/chat/presence"
	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
)

// ErrValidation marks a request rejected for a missing required field.
// The handler maps it to InvalidArgument; everything else is Internal.
var ErrValidation = errors.New("validation failed")

// ChatService defines the interface exposed to the handler layer.
type ChatService interface {
	SendMessage(ctx context.Context, text, userID, targetUserID string) (*dbmongo.Message, error)
	MessageHistory(ctx context.Context, userID, targetUserID string) ([]*dbmongo.Message, error)
}

type chatService struct {
	repo     dbmongo.MessageRepository
	bus      eventbus.Publisher
	presence *presence.Registry
	logger   *slog.Logger
}

// Constructor used in DI/wire.
func NewChatService(
	repo dbmongo.MessageRepository,
	bus eventbus.Publisher,
	registry *presence.Registry,
	logger *slog.Logger,
) ChatService {
	return &chatService{
		repo:     repo,
		bus:      bus,
		presence: registry,
		logger:   logger,
	}
}

// SendMessage persists the message, publishes the CHAT_MESSAGE event
// and pushes to the recipient's live stream when one is registered.
// The live push is fire-and-forget: an offline or stalled recipient
// never fails the sender's request. Persist and publish failures are
// surfaced; retrying is the caller's responsibility.
func (s *chatService) SendMessage(ctx context.Context, text, userID, targetUserID string) (*dbmongo.Message, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrValidation)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	}
	if targetUserID == "" {
		return nil, fmt.Errorf("%w: target user ID cannot be empty", ErrValidation)
	}

	msg := &dbmongo.Message{
		Text:         text,
		UserID:       userID,
		TargetUserID: targetUserID,
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}

	// The event carries the persisted message id, so the notification
	// consumer derives a stable record identity under redelivery.
	event := eventbus.Event{
		Type:         eventbus.TypeChatMessage,
		UserID:       userID,
		TargetUserID: targetUserID,
		MessageID:    msg.ID,
		Content:      text,
	}
	if err := s.bus.Publish(ctx, eventbus.TopicNotifications, event); err != nil {
		return nil, err
	}

	if stream, ok := s.presence.Lookup(targetUserID); ok {
		if err := stream.Send(msg); err != nil {
			s.logger.Warn("live delivery failed, recipient will rely on the durable notification",
				"target_user_id", targetUserID, "message_id", msg.ID, "error", err)
		}
	}

	return msg, nil
}

// MessageHistory returns the conversation between two users in send order.
func (s *chatService) MessageHistory(ctx context.Context, userID, targetUserID string) ([]*dbmongo.Message, error) {
	if userID == "" || targetUserID == "" {
		return nil, fmt.Errorf("%w: both user IDs are required", ErrValidation)
	}
	return s.repo.History(ctx, userID, targetUserID)
}
