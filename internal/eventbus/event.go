// Package eventbus wraps the Kafka topics the pipeline communicates over.
package eventbus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Topic names and consumer group ids. The group ids must remain stable
// across deployments to preserve offset continuity.
const (
	TopicNotifications = "notifications"
	TopicStories       = "stories"
)

// Event types carried on the bus.
const (
	TypeLike         = "LIKE"
	TypeComment      = "COMMENT"
	TypeChatMessage  = "CHAT_MESSAGE"
	TypeStoryCreated = "STORY_CREATED"
	TypeStoryExpired = "STORY_EXPIRED"
)

var ErrMalformedEvent = errors.New("eventbus: malformed event")

// Event is the JSON envelope published onto the notifications and
// stories topics. Which optional fields are set depends on Type.
type Event struct {
	Type         string `json:"type"`
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId,omitempty"`
	PostID       string `json:"postId,omitempty"`
	CommentText  string `json:"commentText,omitempty"`
	MessageID    string `json:"messageId,omitempty"`
	StoryID      string `json:"storyId,omitempty"`
	Content      string `json:"content,omitempty"`
}

// ParseEvent decodes a bus payload. A payload that does not parse or
// has no type is malformed; retrying it can never succeed, so callers
// drop it.
func ParseEvent(payload []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if ev.Type == "" {
		return Event{}, fmt.Errorf("%w: missing type", ErrMalformedEvent)
	}
	return ev, nil
}

// NotificationKey derives the durable identity of the notification this
// event produces. The key comes from the event's own identity (message
// id, story id, or the like/comment composite), so processing the same
// event twice yields the same record id and the second write overwrites
// the first.
func (e Event) NotificationKey() (string, error) {
	switch e.Type {
	case TypeChatMessage:
		if e.MessageID == "" {
			return "", fmt.Errorf("%w: %s event without messageId", ErrMalformedEvent, e.Type)
		}
		return fmt.Sprintf("chat-message:%s", e.MessageID), nil
	case TypeStoryCreated, TypeStoryExpired:
		if e.StoryID == "" {
			return "", fmt.Errorf("%w: %s event without storyId", ErrMalformedEvent, e.Type)
		}
		return fmt.Sprintf("%s:%s", keyPrefix(e.Type), e.StoryID), nil
	case TypeLike, TypeComment:
		if e.PostID == "" || e.UserID == "" {
			return "", fmt.Errorf("%w: %s event without postId/userId", ErrMalformedEvent, e.Type)
		}
		return fmt.Sprintf("%s:%s:%s", keyPrefix(e.Type), e.PostID, e.UserID), nil
	default:
		return "", fmt.Errorf("%w: unknown type %q", ErrMalformedEvent, e.Type)
	}
}

func keyPrefix(eventType string) string {
	switch eventType {
	case TypeLike:
		return "like"
	case TypeComment:
		return "comment"
	case TypeStoryCreated:
		return "story-created"
	case TypeStoryExpired:
		return "story-expired"
	default:
		return "event"
	}
}

// PartitionKey groups events by the user they are delivered to, so the
// bus preserves per-recipient ordering within a partition.
func (e Event) PartitionKey() []byte {
	if e.TargetUserID != "" {
		return []byte(e.TargetUserID)
	}
	return []byte(e.UserID)
}
