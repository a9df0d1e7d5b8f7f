package repositories

import (
	"context"
	"time"

	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByAuthor(ctx context.Context, userID string) ([]models.Post, error)
	UpdateContent(ctx context.Context, id string, content string) error
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost creates a new post in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	if post.Likes == nil {
		post.Likes = []string{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that cannot be an ObjectID cannot match any document.
		return nil, models.ErrPostNotFound
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByAuthor retrieves the posts authored by a user, newest first.
// The posts collection is the source of truth for a user's posts.
func (r *MongoPostRepository) GetPostsByAuthor(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateContent replaces the content of a post by ID
func (r *MongoPostRepository) UpdateContent(ctx context.Context, id string, content string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrPostNotFound
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"content": content}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrPostNotFound
	}
	return nil
}

// AddLike adds a user's ID to the post's likes set. $addToSet keeps the
// likes a set even when like requests repeat.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID string) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return models.ErrPostNotFound
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$addToSet": bson.M{"likes": userID}})
	return err
}

// RemoveLike removes a user's ID from the post's likes set
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return models.ErrPostNotFound
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$pull": bson.M{"likes": userID}})
	return err
}
