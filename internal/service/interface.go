package service

import (
	"context"

	"github.com/mdSafdarKhan/redis/internal/domain"
)

// UserService defines the interface for user business logic.
type UserService interface {
	// GetUser reads through the cache. Only users at or above the follower
	// threshold are cached on the read path.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	// UpdateUser overwrites name and followers of an existing user and always
	// refreshes its cache entry.
	UpdateUser(ctx context.Context, input domain.User) (*domain.User, error)
	// ListUsers returns every stored user straight from the store.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
