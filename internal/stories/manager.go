// Package stories manages ephemeral content: creation, the expiration
// sweep, and the cascading notification events for both.
package stories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
)

// Manager consumes the stories topic as the story-group member.
// Lifecycle per story: CREATED -> ACTIVE -> EXPIRED(deleted).
type Manager struct {
	repo   dbmongo.StoryRepository
	bus    eventbus.Publisher
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewManager(repo dbmongo.StoryRepository, bus eventbus.Publisher, ttl time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		repo:   repo,
		bus:    bus,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// HandleEvent processes one stories-topic event. Errors are returned to
// the consumer loop, which logs and skips.
func (m *Manager) HandleEvent(ctx context.Context, event eventbus.Event) error {
	switch event.Type {
	case eventbus.TypeStoryCreated:
		return m.createStory(ctx, event)
	case eventbus.TypeStoryExpired:
		return m.expireStory(ctx, event)
	default:
		return fmt.Errorf("%w: unexpected type %q on %s topic",
			eventbus.ErrMalformedEvent, event.Type, eventbus.TopicStories)
	}
}

// createStory persists the story with its expiration stamp and notifies
// the author. The record is keyed on the producer-assigned story id, so
// a redelivered STORY_CREATED event overwrites instead of duplicating.
func (m *Manager) createStory(ctx context.Context, event eventbus.Event) error {
	if event.UserID == "" || event.Content == "" {
		return fmt.Errorf("%w: STORY_CREATED without userId/content", eventbus.ErrMalformedEvent)
	}

	now := m.now().UTC()
	story := &dbmongo.Story{
		ID:        event.StoryID,
		UserID:    event.UserID,
		Content:   event.Content,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.repo.Save(ctx, story); err != nil {
		return err
	}

	m.logger.Info("story created",
		"story_id", story.ID, "user_id", story.UserID, "expires_at", story.ExpiresAt)

	notification := eventbus.Event{
		Type:         eventbus.TypeStoryCreated,
		UserID:       event.UserID,
		TargetUserID: event.UserID,
		StoryID:      story.ID,
		Content:      event.Content,
	}
	if err := m.bus.Publish(ctx, eventbus.TopicNotifications, notification); err != nil {
		return fmt.Errorf("story %s saved but notification publish failed: %w", story.ID, err)
	}
	return nil
}

// expireStory handles an externally issued STORY_EXPIRED event, e.g.
// from another instance's sweep. Deletion is idempotent: a story that
// is already gone is a no-op, not an error.
func (m *Manager) expireStory(ctx context.Context, event eventbus.Event) error {
	if event.StoryID == "" {
		return fmt.Errorf("%w: STORY_EXPIRED without storyId", eventbus.ErrMalformedEvent)
	}

	deleted, err := m.repo.Delete(ctx, event.StoryID)
	if err != nil {
		return err
	}
	if !deleted {
		m.logger.Debug("story already deleted", "story_id", event.StoryID)
	}
	return nil
}

// ActiveStories filters on expiresAt at read time, so an expired story
// disappears from queries even before the sweep has deleted it.
func (m *Manager) ActiveStories(ctx context.Context) ([]*dbmongo.Story, error) {
	return m.repo.Active(ctx, m.now().UTC())
}

func (m *Manager) ActiveStoriesByUser(ctx context.Context, userID string) ([]*dbmongo.Story, error) {
	return m.repo.ActiveByUser(ctx, userID, m.now().UTC())
}
