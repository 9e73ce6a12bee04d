package events

import (
	"context"
	"time"

	"github.com/mdSafdarKhan/redis/internal/domain"
)

// UserUpdatedEvent is published after a user update has been persisted.
type UserUpdatedEvent struct {
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Followers int64  `json:"followers"`
	Timestamp int64  `json:"timestamp"`
}

// NewUserUpdatedEvent builds the event for a persisted user.
func NewUserUpdatedEvent(u *domain.User, at time.Time) *UserUpdatedEvent {
	return &UserUpdatedEvent{
		UserID:    u.ID,
		Name:      u.Name,
		Followers: u.Followers,
		Timestamp: at.UnixMilli(),
	}
}

// Publisher emits user events to downstream consumers.
type Publisher interface {
	PublishUserUpdated(ctx context.Context, event *UserUpdatedEvent) error
	Close() error
}

// NoopPublisher drops every event. Used when events are disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishUserUpdated(context.Context, *UserUpdatedEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
