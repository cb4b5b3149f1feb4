package stories

import (
	"context"
	"log/slog"
	"time"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
)

// Sweeper deletes stories whose expiresAt has passed. It replaces the
// obvious in-process delayed callback, which forgets every pending
// expiration on restart: the sweep re-derives its work from the store
// on each tick, so it is restart-safe and may run concurrently on
// several instances (deletion is idempotent and duplicate notifications
// are absorbed downstream by the natural-key upsert).
type Sweeper struct {
	repo     dbmongo.StoryRepository
	bus      eventbus.Publisher
	interval time.Duration
	batch    int64
	logger   *slog.Logger
	now      func() time.Time
}

func NewSweeper(repo dbmongo.StoryRepository, bus eventbus.Publisher, interval time.Duration, batch int64, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		repo:     repo,
		bus:      bus,
		interval: interval,
		batch:    batch,
		logger:   logger,
		now:      time.Now,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiration sweeper started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiration sweeper stopped")
			return nil
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass: delete every expired story and publish the
// STORY_EXPIRED cascade for each one this instance actually deleted.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.now().UTC()

	expired, err := s.repo.Expired(ctx, now, s.batch)
	if err != nil {
		s.logger.Error("expired-story query failed", "error", err)
		return
	}

	for _, story := range expired {
		deleted, err := s.repo.Delete(ctx, story.ID)
		if err != nil {
			s.logger.Error("story delete failed", "story_id", story.ID, "error", err)
			continue
		}
		if !deleted {
			// A concurrent sweep on another instance got there first.
			continue
		}

		s.logger.Info("story expired and deleted", "story_id", story.ID, "user_id", story.UserID)

		notification := eventbus.Event{
			Type:         eventbus.TypeStoryExpired,
			UserID:       story.UserID,
			TargetUserID: story.UserID,
			StoryID:      story.ID,
		}
		if err := s.bus.Publish(ctx, eventbus.TopicNotifications, notification); err != nil {
			s.logger.Error("story expiration notification publish failed",
				"story_id", story.ID, "error", err)
		}
	}
}
