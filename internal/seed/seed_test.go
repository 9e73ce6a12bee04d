package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdSafdarKhan/redis/internal/domain"
	"github.com/mdSafdarKhan/redis/internal/repository"
	"github.com/mdSafdarKhan/redis/pkg/database"
)

func newRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := database.New(&database.Config{Driver: "sqlite", FilePath: ":memory:", MaxOpenConns: 1}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db, &domain.UserModel{}))

	return repository.NewGormUserRepository(db)
}

func TestSeeder_EmptyStore(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	n, err := NewSeeder(repo, DefaultUsers).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{
		{ID: 1, Name: "Safdar", Followers: 1000},
		{ID: 2, Name: "Farhan", Followers: 6000},
		{ID: 3, Name: "Kamran", Followers: 12000},
	}, all)
}

func TestSeeder_SkipsPopulatedStore(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, &domain.User{Name: "existing", Followers: 5})
	require.NoError(t, err)

	n, err := NewSeeder(repo, DefaultUsers).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSeeder_IgnoresPresetIDs(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	users := []domain.User{{ID: 42, Name: "Safdar", Followers: 1000}}
	_, err := NewSeeder(repo, users).Run(ctx)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Safdar", got.Name)
	assert.Equal(t, int64(42), users[0].ID)
}

type failingRepo struct {
	repository.UserRepository
	err error
}

func (r failingRepo) FindAll(context.Context) ([]domain.User, error) { return nil, r.err }

func TestSeeder_ListError(t *testing.T) {
	boom := errors.New("boom")

	n, err := NewSeeder(failingRepo{err: boom}, DefaultUsers).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Zero(t, n)
}
