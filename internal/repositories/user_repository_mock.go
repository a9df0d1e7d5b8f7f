package repositories

import (
	"context"
	"sync"

	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It mirrors the MongoDB repository's behavior, including the fact that
// email uniqueness is only enforced by the handler's pre-check.
type MockUserRepository struct {
	users map[string]models.User // keyed by hex ObjectID
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// CreateUser adds a new user.
func (r *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = primitive.NewObjectID()
	if user.ProfilePic == "" {
		user.ProfilePic = models.DefaultProfilePic
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

// GetUserByEmail returns a user by email.
func (r *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, models.ErrUserNotFound
}

// GetUserByID returns a user by its hex ObjectID.
func (r *MockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &user, nil
}

// SetProfilePic records the stored filename of the user's profile picture.
func (r *MockUserRepository) SetProfilePic(ctx context.Context, id string, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	user.ProfilePic = filename
	r.users[id] = user
	return nil
}

// Count returns the number of stored users.
func (r *MockUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
