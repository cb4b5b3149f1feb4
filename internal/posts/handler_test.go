package posts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
	"socialfeed/internal/posts/mocks"
)

type handlerMocks struct {
	posts   *mocks.MockPostRepository
	stories *mocks.MockStoryRepository
	bus     *mocks.MockPublisher
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		posts:   mocks.NewMockPostRepository(ctrl),
		stories: mocks.NewMockStoryRepository(ctrl),
		bus:     mocks.NewMockPublisher(ctrl),
	}
	h := NewHandler(m.posts, m.stories, m.bus, 24*time.Hour, slog.Default())
	return h, m
}

func doJSON(t *testing.T, h *Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreatePost(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockSetup  func(m handlerMocks)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]string{"content": "first post", "userId": "u1"},
			mockSetup: func(m handlerMocks) {
				m.posts.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, post *dbmongo.Post) error {
						post.ID = "p1"
						return nil
					}).
					Times(1)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing content",
			body:       map[string]string{"userId": "u1"},
			mockSetup:  func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "repository error",
			body: map[string]string{"content": "first post", "userId": "u1"},
			mockSetup: func(m handlerMocks) {
				m.posts.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(errors.New("mongo down")).
					Times(1)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.mockSetup(m)

			rec := doJSON(t, h, http.MethodPost, "/posts", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_LikePost_PublishesToPostOwner(t *testing.T) {
	h, m := newTestHandler(t)

	m.posts.EXPECT().
		ByID(gomock.Any(), "p1").
		Return(&dbmongo.Post{ID: "p1", UserID: "owner", Content: "hello"}, nil).
		Times(1)
	m.posts.EXPECT().Like(gomock.Any(), "p1").Return(int64(4), nil).Times(1)
	m.bus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicNotifications, gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic string, event eventbus.Event) error {
			assert.Equal(t, eventbus.TypeLike, event.Type)
			assert.Equal(t, "liker", event.UserID)
			assert.Equal(t, "owner", event.TargetUserID)
			assert.Equal(t, "p1", event.PostID)
			return nil
		}).
		Times(1)

	rec := doJSON(t, h, http.MethodPost, "/posts/p1/like", map[string]string{"userId": "liker"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body["likes"])
}

func TestHandler_LikePost_UnknownPost(t *testing.T) {
	h, m := newTestHandler(t)

	m.posts.EXPECT().ByID(gomock.Any(), "missing").Return(nil, dbmongo.ErrNotFound).Times(1)

	rec := doJSON(t, h, http.MethodPost, "/posts/missing/like", map[string]string{"userId": "liker"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AddComment_PublishesToPostOwner(t *testing.T) {
	h, m := newTestHandler(t)

	m.posts.EXPECT().
		ByID(gomock.Any(), "p1").
		Return(&dbmongo.Post{ID: "p1", UserID: "owner"}, nil).
		Times(1)
	m.posts.EXPECT().AddComment(gomock.Any(), "p1", gomock.Any()).Return(nil).Times(1)
	m.bus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicNotifications, gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic string, event eventbus.Event) error {
			assert.Equal(t, eventbus.TypeComment, event.Type)
			assert.Equal(t, "commenter", event.UserID)
			assert.Equal(t, "owner", event.TargetUserID)
			assert.Equal(t, "nice shot", event.CommentText)
			return nil
		}).
		Times(1)

	rec := doJSON(t, h, http.MethodPost, "/posts/p1/comments",
		map[string]string{"text": "nice shot", "userId": "commenter"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_AddComment_MissingText(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/posts/p1/comments", map[string]string{"userId": "commenter"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateStory_PublishesOnStoriesTopic(t *testing.T) {
	h, m := newTestHandler(t)

	m.stories.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, story *dbmongo.Story) error {
			story.ID = "s1"
			// TTL fixed at handler construction.
			assert.Equal(t, story.CreatedAt.Add(24*time.Hour), story.ExpiresAt)
			return nil
		}).
		Times(1)
	m.bus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicStories, gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic string, event eventbus.Event) error {
			assert.Equal(t, eventbus.TypeStoryCreated, event.Type)
			assert.Equal(t, "u1", event.UserID)
			assert.Equal(t, "s1", event.StoryID)
			assert.Equal(t, "sunset", event.Content)
			return nil
		}).
		Times(1)

	rec := doJSON(t, h, http.MethodPost, "/stories", map[string]string{"content": "sunset", "userId": "u1"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_CreateStory_PublishFailure(t *testing.T) {
	h, m := newTestHandler(t)

	m.stories.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.bus.EXPECT().
		Publish(gomock.Any(), eventbus.TopicStories, gomock.Any()).
		Return(errors.New("broker unreachable")).
		Times(1)

	rec := doJSON(t, h, http.MethodPost, "/stories", map[string]string{"content": "sunset", "userId": "u1"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_ListStories_FiltersAtReadTime(t *testing.T) {
	h, m := newTestHandler(t)

	m.stories.EXPECT().
		Active(gomock.Any(), gomock.Any()).
		Return([]*dbmongo.Story{{ID: "s1", UserID: "u1", Content: "fresh"}}, nil).
		Times(1)

	rec := doJSON(t, h, http.MethodGet, "/stories", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var stories []*dbmongo.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stories))
	require.Len(t, stories, 1)
	assert.Equal(t, "s1", stories[0].ID)
}

func TestHandler_ListUserStories_EmptyIsJSONArray(t *testing.T) {
	h, m := newTestHandler(t)

	m.stories.EXPECT().
		ActiveByUser(gomock.Any(), "u2", gomock.Any()).
		Return(nil, nil).
		Times(1)

	rec := doJSON(t, h, http.MethodGet, "/stories/user/u2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandler_ListComments(t *testing.T) {
	h, m := newTestHandler(t)

	m.posts.EXPECT().
		ByID(gomock.Any(), "p1").
		Return(&dbmongo.Post{
			ID:       "p1",
			UserID:   "owner",
			Comments: []dbmongo.Comment{{Text: "hi", UserID: "u2"}},
		}, nil).
		Times(1)

	rec := doJSON(t, h, http.MethodGet, "/posts/p1/comments", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var comments []dbmongo.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "hi", comments[0].Text)
}
