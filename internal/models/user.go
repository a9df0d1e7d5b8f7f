package models

import (
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProfilePic is the placeholder filename until the user uploads one.
const DefaultProfilePic = "default.jpg"

// User represents an account stored in MongoDB
type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Username   string             `json:"username" bson:"username"`
	Age        int                `json:"age" bson:"age"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password"` // Store hashed password, ignore for JSON serialization
	ProfilePic string             `json:"profilepic" bson:"profilepic"`
}

// RegisterRequest defines the request body for creating an account
type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Username string `json:"username" form:"username"`
	Age      int    `json:"age" form:"age"`
	Name     string `json:"name" form:"name"`
}

// LoginRequest defines the request body for authenticating
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// SessionClaims are custom claims extending standard jwt.RegisteredClaims
type SessionClaims struct {
	UserID string `json:"userid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
