package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a short text post stored in MongoDB
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"` // Hex ObjectID of the authoring user
	Content   string             `json:"content" bson:"content"`
	Likes     []string           `json:"likes" bson:"likes"` // Set of user IDs, never holds duplicates
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// LikedBy reports whether the given user's ID is in the likes set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string `json:"content" form:"content" validate:"required"`
}

// UpdatePostRequest defines the request body for replacing a post's content
type UpdatePostRequest struct {
	Content string `json:"content" form:"content"`
}
