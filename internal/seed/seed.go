// Package seed loads the demo users into an empty store at startup.
package seed

import (
	"context"
	"fmt"

	"github.com/mdSafdarKhan/redis/internal/audit"
	"github.com/mdSafdarKhan/redis/internal/domain"
	"github.com/mdSafdarKhan/redis/internal/repository"
	"github.com/mdSafdarKhan/redis/pkg/log"
)

// DefaultUsers are inserted in order, so a fresh store assigns ids 1, 2, 3.
var DefaultUsers = []domain.User{
	{Name: "Safdar", Followers: 1000},
	{Name: "Farhan", Followers: 6000},
	{Name: "Kamran", Followers: 12000},
}

type Seeder struct {
	repo  repository.UserRepository
	users []domain.User
}

func NewSeeder(repo repository.UserRepository, users []domain.User) *Seeder {
	return &Seeder{repo: repo, users: users}
}

// Run saves the seed users when the store is empty and returns how many
// were written.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	l := log.Ctx(ctx)

	before, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users before seeding: %w", err)
	}
	l.Info().Int("count", len(before)).Str("users", fmt.Sprint(before)).Msg("before seeding")

	if len(before) > 0 {
		l.Info().Msg("store already populated, skipping seed")
		return 0, nil
	}

	for i := range s.users {
		u := s.users[i]
		u.ID = 0
		if _, err := s.repo.Save(ctx, &u); err != nil {
			return i, fmt.Errorf("failed to seed user %q: %w", u.Name, err)
		}
	}

	after, err := s.repo.FindAll(ctx)
	if err != nil {
		return len(s.users), fmt.Errorf("failed to list users after seeding: %w", err)
	}
	l.Info().Int("count", len(after)).Str("users", fmt.Sprint(after)).Msg("after seeding")

	audit.LogSeed(ctx, len(s.users))
	l.Info().Msg("users loaded")
	return len(s.users), nil
}
