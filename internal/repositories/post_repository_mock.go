package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPostRepository is an in-memory implementation of PostRepository.
// Like mutations mirror MongoDB's $addToSet / $pull set semantics.
type MockPostRepository struct {
	posts map[string]models.Post // keyed by hex ObjectID
	mu    sync.RWMutex
}

// NewMockPostRepository creates a new instance of MockPostRepository.
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		posts: make(map[string]models.Post),
	}
}

// CreatePost adds a new post.
func (r *MockPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	if post.Likes == nil {
		post.Likes = []string{}
	}
	r.posts[post.ID.Hex()] = *post
	return nil
}

// GetPostByID returns a post by its hex ObjectID.
func (r *MockPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, models.ErrPostNotFound
	}
	post.Likes = append([]string(nil), post.Likes...)
	return &post, nil
}

// GetPostsByAuthor returns the posts authored by a user, newest first.
func (r *MockPostRepository) GetPostsByAuthor(ctx context.Context, userID string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []models.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// UpdateContent replaces the content of a post.
func (r *MockPostRepository) UpdateContent(ctx context.Context, id string, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return models.ErrPostNotFound
	}
	post.Content = content
	r.posts[id] = post
	return nil
}

// AddLike adds a user's ID to the post's likes set, skipping duplicates.
func (r *MockPostRepository) AddLike(ctx context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return models.ErrPostNotFound
	}
	for _, id := range post.Likes {
		if id == userID {
			return nil
		}
	}
	post.Likes = append(post.Likes, userID)
	r.posts[postID] = post
	return nil
}

// RemoveLike removes a user's ID from the post's likes set.
func (r *MockPostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return models.ErrPostNotFound
	}
	likes := post.Likes[:0:0]
	for _, id := range post.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	post.Likes = likes
	r.posts[postID] = post
	return nil
}
