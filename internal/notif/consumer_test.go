package notif

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
	"socialfeed/internal/notif/mocks"
)

// memoryNotificationRepo stores notifications by id, mirroring the
// upsert semantics of the mongo repository.
type memoryNotificationRepo struct {
	mu      sync.Mutex
	records map[string]*dbmongo.Notification
}

func newMemoryNotificationRepo() *memoryNotificationRepo {
	return &memoryNotificationRepo{records: make(map[string]*dbmongo.Notification)}
}

func (r *memoryNotificationRepo) Upsert(ctx context.Context, n *dbmongo.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[n.ID] = n
	return nil
}

func (r *memoryNotificationRepo) ByRecipient(ctx context.Context, userID string, limit, offset int64) ([]*dbmongo.Notification, error) {
	return nil, nil
}

func (r *memoryNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	return nil
}

func TestConsumer_HandleEvent_FieldMapping(t *testing.T) {
	tests := []struct {
		name   string
		event  eventbus.Event
		verify func(t *testing.T, n *dbmongo.Notification)
	}{
		{
			name:  "chat message",
			event: eventbus.Event{Type: eventbus.TypeChatMessage, UserID: "u1", TargetUserID: "u2", MessageID: "m1", Content: "hi"},
			verify: func(t *testing.T, n *dbmongo.Notification) {
				assert.Equal(t, "chat-message:m1", n.ID)
				assert.Equal(t, eventbus.TypeChatMessage, n.Type)
				assert.Equal(t, "u1", n.UserID)
				assert.Equal(t, "u2", n.TargetUserID)
				assert.Equal(t, "m1", n.MessageID)
				assert.False(t, n.Read)
			},
		},
		{
			name:  "like",
			event: eventbus.Event{Type: eventbus.TypeLike, UserID: "u1", TargetUserID: "u2", PostID: "p1"},
			verify: func(t *testing.T, n *dbmongo.Notification) {
				assert.Equal(t, "like:p1:u1", n.ID)
				assert.Equal(t, "p1", n.PostID)
				assert.Empty(t, n.MessageID)
			},
		},
		{
			name:  "comment",
			event: eventbus.Event{Type: eventbus.TypeComment, UserID: "u1", TargetUserID: "u2", PostID: "p1", CommentText: "nice"},
			verify: func(t *testing.T, n *dbmongo.Notification) {
				assert.Equal(t, "comment:p1:u1", n.ID)
				assert.Equal(t, "nice", n.CommentText)
			},
		},
		{
			name:  "story created notifies its author",
			event: eventbus.Event{Type: eventbus.TypeStoryCreated, UserID: "u1", StoryID: "s1", Content: "my story"},
			verify: func(t *testing.T, n *dbmongo.Notification) {
				assert.Equal(t, "story-created:s1", n.ID)
				assert.Equal(t, "u1", n.TargetUserID)
				assert.Equal(t, "s1", n.StoryID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockNotificationRepository(ctrl)

			var stored *dbmongo.Notification
			mockRepo.EXPECT().
				Upsert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, n *dbmongo.Notification) error {
					stored = n
					return nil
				}).
				Times(1)

			consumer := NewConsumer(mockRepo, slog.Default())
			require.NoError(t, consumer.HandleEvent(context.Background(), tt.event))
			require.NotNil(t, stored)
			tt.verify(t, stored)
		})
	}
}

func TestConsumer_HandleEvent_RedeliveryIsIdempotent(t *testing.T) {
	repo := newMemoryNotificationRepo()
	consumer := NewConsumer(repo, slog.Default())

	event := eventbus.Event{Type: eventbus.TypeChatMessage, UserID: "u1", TargetUserID: "u2", MessageID: "m1", Content: "hi"}

	// At-least-once: the same event arrives twice after a crash-and-resume.
	require.NoError(t, consumer.HandleEvent(context.Background(), event))
	require.NoError(t, consumer.HandleEvent(context.Background(), event))

	assert.Len(t, repo.records, 1)
}

func TestConsumer_HandleEvent_MalformedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockNotificationRepository(ctrl)
	consumer := NewConsumer(mockRepo, slog.Default())

	// No messageId: the key cannot be derived and nothing is stored.
	err := consumer.HandleEvent(context.Background(),
		eventbus.Event{Type: eventbus.TypeChatMessage, UserID: "u1"})
	assert.ErrorIs(t, err, eventbus.ErrMalformedEvent)
}

func TestConsumer_HandleEvent_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockNotificationRepository(ctrl)
	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(errors.New("write concern timeout")).
		Times(1)

	consumer := NewConsumer(mockRepo, slog.Default())
	err := consumer.HandleEvent(context.Background(),
		eventbus.Event{Type: eventbus.TypeLike, UserID: "u1", TargetUserID: "u2", PostID: "p1"})
	assert.ErrorContains(t, err, "write concern timeout")
}
