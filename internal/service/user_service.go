package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mdSafdarKhan/redis/internal/audit"
	"github.com/mdSafdarKhan/redis/internal/cache"
	"github.com/mdSafdarKhan/redis/internal/domain"
	"github.com/mdSafdarKhan/redis/internal/events"
	"github.com/mdSafdarKhan/redis/internal/repository"
	"github.com/mdSafdarKhan/redis/pkg/log"
)

// DefaultMinFollowers is the read-path caching threshold.
const DefaultMinFollowers int64 = 12000

var ErrUserNotFound = errors.New("user not found")

// CachePolicy configures how reads populate the cache.
type CachePolicy struct {
	// MinFollowers is the lowest follower count cached on read.
	MinFollowers int64
	// TTL applies to every cache write; zero keeps entries indefinitely.
	TTL time.Duration
}

// userServiceImpl implements UserService interface.
type userServiceImpl struct {
	repo      repository.UserRepository
	cache     cache.UserCache
	publisher events.Publisher
	policy    CachePolicy
	now       func() time.Time
}

// NewUserService creates a new user service. A nil publisher disables
// update events.
func NewUserService(
	repo repository.UserRepository,
	userCache cache.UserCache,
	publisher events.Publisher,
	policy CachePolicy,
) UserService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &userServiceImpl{
		repo:      repo,
		cache:     userCache,
		publisher: publisher,
		policy:    policy,
		now:       time.Now,
	}
}

// GetUser retrieves a user by ID.
func (s *userServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	l := log.Ctx(ctx).With().Int64(log.FieldUserID, userID).Logger()
	key := s.cache.BuildKeyByID(userID)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		audit.LogRead(ctx, userID, audit.SourceCache)
		user := cached.User
		return &user, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		l.Warn().Err(err).Str(log.FieldCacheKey, key).Msg("cache get error")
		// Drop the unreadable entry so a below-threshold user is not left behind.
		if err := s.cache.Delete(ctx, key); err != nil {
			l.Warn().Err(err).Str(log.FieldCacheKey, key).Msg("cache delete error")
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		l.Error().Err(err).Msg("failed to get user")
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	if s.cacheableOnRead(user) {
		if err := s.cache.Set(ctx, key, &cache.UserCacheResult{User: *user}, s.policy.TTL); err != nil {
			l.Warn().Err(err).Str(log.FieldCacheKey, key).Msg("cache set error")
		}
	} else {
		l.Debug().Int64(log.FieldFollowers, user.Followers).Msg("below follower threshold, not caching")
	}

	audit.LogRead(ctx, userID, audit.SourceStore)
	return user, nil
}

// cacheableOnRead reports whether a user fetched from the store should be
// cached. Updates ignore this and always cache.
func (s *userServiceImpl) cacheableOnRead(user *domain.User) bool {
	return user.Followers >= s.policy.MinFollowers
}

// UpdateUser updates a user.
func (s *userServiceImpl) UpdateUser(ctx context.Context, input domain.User) (*domain.User, error) {
	l := log.Ctx(ctx).With().Int64(log.FieldUserID, input.ID).Logger()

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		l.Error().Err(err).Msg("failed to get user for update")
		return nil, fmt.Errorf("failed to get user %d: %w", input.ID, err)
	}

	existing.Name = input.Name
	existing.Followers = input.Followers

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		l.Error().Err(err).Msg("failed to update user")
		return nil, err
	}

	key := s.cache.BuildKeyByID(input.ID)
	if err := s.cache.Set(ctx, key, &cache.UserCacheResult{User: *saved}, s.policy.TTL); err != nil {
		l.Warn().Err(err).Str(log.FieldCacheKey, key).Msg("cache set error")
	}

	if err := s.publisher.PublishUserUpdated(ctx, events.NewUserUpdatedEvent(saved, s.now())); err != nil {
		l.Warn().Err(err).Msg("failed to publish user updated event")
	}

	audit.Log(ctx, audit.ActionUpdateUser, saved.ID, "user updated")
	return saved, nil
}

// ListUsers lists all users.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return users, nil
}
