package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository interface {
	Save(ctx context.Context, msg *Message) error
	History(ctx context.Context, userID, targetUserID string) ([]*Message, error)
}

type messageRepo struct {
	coll *mongo.Collection
}

func NewMessageRepository(mc *MongoClient) MessageRepository {
	return &messageRepo{coll: mc.Database.Collection("messages")}
}

// Save assigns the message id and timestamp and inserts the record.
func (r *messageRepo) Save(ctx context.Context, msg *Message) error {
	if msg.ID == "" {
		msg.ID = primitive.NewObjectID().Hex()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// History returns every message exchanged between the two users in send
// order.
func (r *messageRepo) History(ctx context.Context, userID, targetUserID string) ([]*Message, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"userId": userID, "targetUserId": targetUserID},
			bson.M{"userId": targetUserID, "targetUserId": userID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message history: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode message history: %w", err)
	}
	return messages, nil
}
