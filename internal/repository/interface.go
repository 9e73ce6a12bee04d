package repository

import (
	"context"
	"errors"

	"github.com/mdSafdarKhan/redis/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindByID returns ErrUserNotFound when no row has the id.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Save inserts a user without an id (assigning one) or overwrites the
	// row with the user's id, and returns the persisted record.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
