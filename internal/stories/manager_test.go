package stories

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
	"socialfeed/internal/stories/mocks"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestManager_HandleEvent_StoryCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockStoryRepository(ctrl)
	mockBus := mocks.NewMockPublisher(ctrl)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	manager := NewManager(mockRepo, mockBus, 24*time.Hour, slog.Default())
	manager.now = fixedClock(createdAt)

	var saved *dbmongo.Story
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, story *dbmongo.Story) error {
			saved = story
			return nil
		}).
		Times(1)
	mockBus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicNotifications, gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic string, event eventbus.Event) error {
			assert.Equal(t, eventbus.TypeStoryCreated, event.Type)
			assert.Equal(t, "u1", event.UserID)
			assert.Equal(t, "u1", event.TargetUserID)
			assert.Equal(t, "s1", event.StoryID)
			return nil
		}).
		Times(1)

	err := manager.HandleEvent(context.Background(), eventbus.Event{
		Type:    eventbus.TypeStoryCreated,
		UserID:  "u1",
		StoryID: "s1",
		Content: "hello from the beach",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "s1", saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
	// Expiration is exactly creation plus the TTL.
	assert.Equal(t, createdAt.Add(24*time.Hour), saved.ExpiresAt)
}

func TestManager_HandleEvent_StoryCreated_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := NewManager(mocks.NewMockStoryRepository(ctrl), mocks.NewMockPublisher(ctrl), 24*time.Hour, slog.Default())

	err := manager.HandleEvent(context.Background(), eventbus.Event{
		Type:   eventbus.TypeStoryCreated,
		UserID: "u1",
	})
	assert.ErrorIs(t, err, eventbus.ErrMalformedEvent)
}

func TestManager_HandleEvent_StoryExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockStoryRepository(ctrl)
	manager := NewManager(mockRepo, mocks.NewMockPublisher(ctrl), 24*time.Hour, slog.Default())

	mockRepo.EXPECT().Delete(gomock.Any(), "s1").Return(true, nil).Times(1)

	err := manager.HandleEvent(context.Background(), eventbus.Event{
		Type:    eventbus.TypeStoryExpired,
		UserID:  "u1",
		StoryID: "s1",
	})
	assert.NoError(t, err)
}

func TestManager_HandleEvent_StoryExpired_AlreadyDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockStoryRepository(ctrl)
	manager := NewManager(mockRepo, mocks.NewMockPublisher(ctrl), 24*time.Hour, slog.Default())

	// Duplicate STORY_EXPIRED for a story that is already gone.
	mockRepo.EXPECT().Delete(gomock.Any(), "s1").Return(false, nil).Times(1)

	err := manager.HandleEvent(context.Background(), eventbus.Event{
		Type:    eventbus.TypeStoryExpired,
		StoryID: "s1",
	})
	assert.NoError(t, err)
}

func TestManager_HandleEvent_UnexpectedType(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := NewManager(mocks.NewMockStoryRepository(ctrl), mocks.NewMockPublisher(ctrl), 24*time.Hour, slog.Default())

	err := manager.HandleEvent(context.Background(), eventbus.Event{Type: eventbus.TypeLike, UserID: "u1"})
	assert.ErrorIs(t, err, eventbus.ErrMalformedEvent)
}

func TestManager_HandleEvent_StoryCreated_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockStoryRepository(ctrl)
	mockBus := mocks.NewMockPublisher(ctrl)
	manager := NewManager(mockRepo, mockBus, 24*time.Hour, slog.Default())

	mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockBus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicNotifications, gomock.Any()).
		Return(errors.New("broker unreachable")).
		Times(1)

	err := manager.HandleEvent(context.Background(), eventbus.Event{
		Type:    eventbus.TypeStoryCreated,
		UserID:  "u1",
		StoryID: "s1",
		Content: "short lived",
	})
	assert.ErrorContains(t, err, "broker unreachable")
}
