package stories

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
	"socialfeed/internal/stories/mocks"
)

// memoryStoryRepo mirrors the mongo repository's filter semantics so
// the lifecycle can be exercised end to end against a clock.
type memoryStoryRepo struct {
	mu      sync.Mutex
	stories map[string]*dbmongo.Story
}

func newMemoryStoryRepo() *memoryStoryRepo {
	return &memoryStoryRepo{stories: make(map[string]*dbmongo.Story)}
}

func (r *memoryStoryRepo) Save(ctx context.Context, story *dbmongo.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *story
	r.stories[story.ID] = &copied
	return nil
}

func (r *memoryStoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stories[id]; !ok {
		return false, nil
	}
	delete(r.stories, id)
	return true, nil
}

func (r *memoryStoryRepo) Active(ctx context.Context, now time.Time) ([]*dbmongo.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []*dbmongo.Story
	for _, story := range r.stories {
		if story.ExpiresAt.After(now) {
			active = append(active, story)
		}
	}
	return active, nil
}

func (r *memoryStoryRepo) ActiveByUser(ctx context.Context, userID string, now time.Time) ([]*dbmongo.Story, error) {
	all, _ := r.Active(ctx, now)
	var active []*dbmongo.Story
	for _, story := range all {
		if story.UserID == userID {
			active = append(active, story)
		}
	}
	return active, nil
}

func (r *memoryStoryRepo) Expired(ctx context.Context, now time.Time, limit int64) ([]*dbmongo.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var expired []*dbmongo.Story
	for _, story := range r.stories {
		if !story.ExpiresAt.After(now) && int64(len(expired)) < limit {
			expired = append(expired, story)
		}
	}
	return expired, nil
}

func TestSweeper_ExpiredStoriesAreDeletedAndCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBus := mocks.NewMockPublisher(ctrl)
	repo := newMemoryStoryRepo()

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	manager := NewManager(repo, mockBus, 24*time.Hour, slog.Default())
	manager.now = fixedClock(createdAt)

	mockBus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicNotifications, gomock.Any()).
		Return(nil).
		Times(1) // STORY_CREATED cascade

	require.NoError(t, manager.HandleEvent(context.Background(), eventbus.Event{
		Type: eventbus.TypeStoryCreated, UserID: "u1", StoryID: "s1", Content: "beach",
	}))

	// Active at T+23h, regardless of the sweep.
	active, err := repo.Active(context.Background(), createdAt.Add(23*time.Hour))
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// Gone from active queries at T+25h even before the sweep runs.
	active, err = repo.Active(context.Background(), createdAt.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, active)

	// The sweep at T+25h deletes the record and publishes the cascade.
	sweeper := NewSweeper(repo, mockBus, time.Minute, 100, slog.Default())
	sweeper.now = fixedClock(createdAt.Add(25 * time.Hour))

	var expiredEvent eventbus.Event
	mockBus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicNotifications, gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic string, event eventbus.Event) error {
			expiredEvent = event
			return nil
		}).
		Times(1)

	sweeper.Sweep(context.Background())

	assert.Empty(t, repo.stories)
	assert.Equal(t, eventbus.TypeStoryExpired, expiredEvent.Type)
	assert.Equal(t, "s1", expiredEvent.StoryID)
	assert.Equal(t, "u1", expiredEvent.TargetUserID)

	// A second sweep finds nothing and publishes nothing.
	sweeper.Sweep(context.Background())
}

func TestSweeper_SkipsUnexpiredStories(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBus := mocks.NewMockPublisher(ctrl)
	repo := newMemoryStoryRepo()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(context.Background(), &dbmongo.Story{
		ID: "s1", UserID: "u1", Content: "fresh",
		CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour),
	}))

	sweeper := NewSweeper(repo, mockBus, time.Minute, 100, slog.Default())
	sweeper.now = fixedClock(now.Add(time.Hour))

	sweeper.Sweep(context.Background())

	assert.Len(t, repo.stories, 1)
}

func TestSweeper_ConcurrentDeletionIsTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockStoryRepository(ctrl)
	mockBus := mocks.NewMockPublisher(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sweeper := NewSweeper(mockRepo, mockBus, time.Minute, 100, slog.Default())
	sweeper.now = fixedClock(now)

	expired := []*dbmongo.Story{
		{ID: "s1", UserID: "u1"},
		{ID: "s2", UserID: "u2"},
	}
	mockRepo.EXPECT().Expired(gomock.Any(), now, int64(100)).Return(expired, nil).Times(1)
	mockRepo.EXPECT().Delete(gomock.Any(), "s1").Return(true, nil).Times(1)
	// Another instance's sweep already deleted s2: no cascade for it.
	mockRepo.EXPECT().Delete(gomock.Any(), "s2").Return(false, nil).Times(1)

	mockBus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicNotifications, gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic string, event eventbus.Event) error {
			assert.Equal(t, "s1", event.StoryID)
			return nil
		}).
		Times(1)

	sweeper.Sweep(context.Background())
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := NewSweeper(mocks.NewMockStoryRepository(ctrl), mocks.NewMockPublisher(ctrl),
		time.Hour, 100, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on cancellation")
	}
}
