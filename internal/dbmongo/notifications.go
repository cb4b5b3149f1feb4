package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("dbmongo: document not found")

type NotificationRepository interface {
	// Upsert writes the notification keyed by its natural id. Replaying
	// the same event replaces the existing record, so persistence stays
	// idempotent under at-least-once redelivery.
	Upsert(ctx context.Context, n *Notification) error
	ByRecipient(ctx context.Context, userID string, limit, offset int64) ([]*Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}

type notificationRepo struct {
	coll *mongo.Collection
}

func NewNotificationRepository(mc *MongoClient) NotificationRepository {
	return &notificationRepo{coll: mc.Database.Collection("notifications")}
}

func (r *notificationRepo) Upsert(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		return errors.New("notification id is required")
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": n.ID}, n, opts); err != nil {
		return fmt.Errorf("failed to upsert notification: %w", err)
	}
	return nil
}

func (r *notificationRepo) ByRecipient(ctx context.Context, userID string, limit, offset int64) ([]*Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.coll.Find(ctx, bson.M{"targetUserId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []*Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "targetUserId": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
