package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository interface {
	Save(ctx context.Context, post *Post) error
	ByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	// Like increments the like counter and returns the new count.
	Like(ctx context.Context, id string) (int64, error)
	AddComment(ctx context.Context, id string, comment Comment) error
}

type postRepo struct {
	coll *mongo.Collection
}

func NewPostRepository(mc *MongoClient) PostRepository {
	return &postRepo{coll: mc.Database.Collection("posts")}
}

func (r *postRepo) Save(ctx context.Context, post *Post) error {
	if post.ID == "" {
		post.ID = primitive.NewObjectID().Hex()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Comments == nil {
		post.Comments = []Comment{}
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *postRepo) ByID(ctx context.Context, id string) (*Post, error) {
	var post Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return &post, nil
}

func (r *postRepo) List(ctx context.Context) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (r *postRepo) Like(ctx context.Context, id string) (int64, error) {
	var post Post
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"likes": 1}},
		opts,
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to like post: %w", err)
	}
	return post.Likes, nil
}

func (r *postRepo) AddComment(ctx context.Context, id string, comment Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
