// Package posts is the REST surface that produces LIKE, COMMENT and
// STORY_CREATED events for the pipeline. It validates, persists and
// publishes; the interesting processing happens downstream.
package posts

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"socialfeed/internal/dbmongo"
	"socialfeed/internal/eventbus"
)

type Handler struct {
	posts    dbmongo.PostRepository
	stories  dbmongo.StoryRepository
	bus      eventbus.Publisher
	storyTTL time.Duration
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(
	posts dbmongo.PostRepository,
	stories dbmongo.StoryRepository,
	bus eventbus.Publisher,
	storyTTL time.Duration,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		posts:    posts,
		stories:  stories,
		bus:      bus,
		storyTTL: storyTTL,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}/like", h.LikePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/comments", h.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/comments", h.ListComments).Methods(http.MethodGet)
	r.HandleFunc("/stories", h.CreateStory).Methods(http.MethodPost)
	r.HandleFunc("/stories", h.ListStories).Methods(http.MethodGet)
	r.HandleFunc("/stories/user/{userId}", h.ListUserStories).Methods(http.MethodGet)
	return r
}

type createPostRequest struct {
	Content string `json:"content" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post := &dbmongo.Post{Content: req.Content, UserID: req.UserID}
	if err := h.posts.Save(r.Context(), post); err != nil {
		h.serverError(w, "create post", err)
		return
	}

	h.writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		h.serverError(w, "list posts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, posts)
}

type likeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req likeRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.posts.ByID(r.Context(), postID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		h.serverError(w, "fetch post", err)
		return
	}

	likes, err := h.posts.Like(r.Context(), postID)
	if err != nil {
		h.serverError(w, "like post", err)
		return
	}

	event := eventbus.Event{
		Type:         eventbus.TypeLike,
		UserID:       req.UserID,
		TargetUserID: post.UserID,
		PostID:       post.ID,
	}
	if err := h.bus.Publish(r.Context(), eventbus.TopicNotifications, event); err != nil {
		h.serverError(w, "publish like event", err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int64{"likes": likes})
}

type commentRequest struct {
	Text   string `json:"text" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req commentRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.posts.ByID(r.Context(), postID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		h.serverError(w, "fetch post", err)
		return
	}

	comment := dbmongo.Comment{Text: req.Text, UserID: req.UserID, CreatedAt: time.Now().UTC()}
	if err := h.posts.AddComment(r.Context(), postID, comment); err != nil {
		h.serverError(w, "add comment", err)
		return
	}

	event := eventbus.Event{
		Type:         eventbus.TypeComment,
		UserID:       req.UserID,
		TargetUserID: post.UserID,
		PostID:       post.ID,
		CommentText:  req.Text,
	}
	if err := h.bus.Publish(r.Context(), eventbus.TopicNotifications, event); err != nil {
		h.serverError(w, "publish comment event", err)
		return
	}

	h.writeJSON(w, http.StatusCreated, comment)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.ByID(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, dbmongo.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		h.serverError(w, "fetch post", err)
		return
	}
	h.writeJSON(w, http.StatusOK, post.Comments)
}

type createStoryRequest struct {
	Content string `json:"content" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

// CreateStory persists the story and announces it on the stories topic.
// The story lifecycle manager owns everything after this point.
func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req createStoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	now := time.Now().UTC()
	story := &dbmongo.Story{
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: now,
		ExpiresAt: now.Add(h.storyTTL),
	}
	if err := h.stories.Save(r.Context(), story); err != nil {
		h.serverError(w, "create story", err)
		return
	}

	event := eventbus.Event{
		Type:    eventbus.TypeStoryCreated,
		UserID:  req.UserID,
		StoryID: story.ID,
		Content: req.Content,
	}
	if err := h.bus.Publish(r.Context(), eventbus.TopicStories, event); err != nil {
		h.serverError(w, "publish story event", err)
		return
	}

	h.writeJSON(w, http.StatusCreated, story)
}

func (h *Handler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.Active(r.Context(), time.Now().UTC())
	if err != nil {
		h.serverError(w, "list stories", err)
		return
	}
	if stories == nil {
		stories = []*dbmongo.Story{}
	}
	h.writeJSON(w, http.StatusOK, stories)
}

func (h *Handler) ListUserStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.ActiveByUser(r.Context(), mux.Vars(r)["userId"], time.Now().UTC())
	if err != nil {
		h.serverError(w, "list user stories", err)
		return
	}
	if stories == nil {
		stories = []*dbmongo.Story{}
	}
	h.writeJSON(w, http.StatusOK, stories)
}

// decode unmarshals and validates the request body, writing a 400 and
// returning false when it is unusable.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response encode failed", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	h.writeError(w, http.StatusInternalServerError, "internal error")
}
