package dbmongo

import "time"

// Message is one chat message between two users. Immutable once saved.
type Message struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Text         string    `bson:"text" json:"text"`
	UserID       string    `bson:"userId" json:"userId"`
	TargetUserID string    `bson:"targetUserId" json:"targetUserId"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}

// Notification is the durable record of one fan-out event. The ID is the
// natural key of the triggering event, never a fresh random id, so a
// redelivered event overwrites its own record instead of inserting twice.
type Notification struct {
	ID           string    `bson:"_id" json:"id"`
	Type         string    `bson:"type" json:"type"`
	UserID       string    `bson:"userId" json:"userId"`
	TargetUserID string    `bson:"targetUserId" json:"targetUserId"`
	PostID       string    `bson:"postId,omitempty" json:"postId,omitempty"`
	CommentText  string    `bson:"commentText,omitempty" json:"commentText,omitempty"`
	MessageID    string    `bson:"messageId,omitempty" json:"messageId,omitempty"`
	StoryID      string    `bson:"storyId,omitempty" json:"storyId,omitempty"`
	Content      string    `bson:"content,omitempty" json:"content,omitempty"`
	Read         bool      `bson:"read" json:"read"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Story is ephemeral content. ExpiresAt is always CreatedAt plus the
// configured TTL; active-story queries filter on it at read time in
// addition to the deletion sweep.
type Story struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Comment is embedded in Post.
type Comment struct {
	Text      string    `bson:"text" json:"text"`
	UserID    string    `bson:"userId" json:"userId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Post is owned by the REST surface; the pipeline only references its id.
type Post struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Content   string    `bson:"content" json:"content"`
	UserID    string    `bson:"userId" json:"userId"`
	Likes     int64     `bson:"likes" json:"likes"`
	Comments  []Comment `bson:"comments" json:"comments"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
