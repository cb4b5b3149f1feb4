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

type StoryRepository interface {
	// Save writes the story keyed by its id so a redelivered
	// STORY_CREATED event does not insert a second copy.
	Save(ctx context.Context, story *Story) error
	// Delete removes the story and reports whether a record was
	// actually deleted. Deleting an already-deleted story is a no-op.
	Delete(ctx context.Context, id string) (bool, error)
	Active(ctx context.Context, now time.Time) ([]*Story, error)
	ActiveByUser(ctx context.Context, userID string, now time.Time) ([]*Story, error)
	// Expired returns up to limit stories whose expiresAt has passed,
	// oldest first, for the deletion sweep.
	Expired(ctx context.Context, now time.Time, limit int64) ([]*Story, error)
}

type storyRepo struct {
	coll *mongo.Collection
}

func NewStoryRepository(mc *MongoClient) StoryRepository {
	return &storyRepo{coll: mc.Database.Collection("stories")}
}

func (r *storyRepo) Save(ctx context.Context, story *Story) error {
	if story.ID == "" {
		story.ID = primitive.NewObjectID().Hex()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": story.ID}, story, opts); err != nil {
		return fmt.Errorf("failed to save story: %w", err)
	}
	return nil
}

func (r *storyRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete story: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *storyRepo) Active(ctx context.Context, now time.Time) ([]*Story, error) {
	return r.find(ctx, bson.M{"expiresAt": bson.M{"$gt": now}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *storyRepo) ActiveByUser(ctx context.Context, userID string, now time.Time) ([]*Story, error) {
	return r.find(ctx, bson.M{"userId": userID, "expiresAt": bson.M{"$gt": now}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *storyRepo) Expired(ctx context.Context, now time.Time, limit int64) ([]*Story, error) {
	return r.find(ctx, bson.M{"expiresAt": bson.M{"$lte": now}},
		options.Find().SetSort(bson.D{{Key: "expiresAt", Value: 1}}).SetLimit(limit))
}

func (r *storyRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Story, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stories: %w", err)
	}
	defer cursor.Close(ctx)

	var stories []*Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("failed to decode stories: %w", err)
	}
	return stories, nil
}
