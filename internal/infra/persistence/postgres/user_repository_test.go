package postgres

import (
	"context"
	"testing"

	"trucktrace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "jane@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email)
	assert.True(t, byID.PushNotificationsEnabled)
	assert.Equal(t, 5, byID.NotificationRadiusMiles)

	byEmail, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "dup@example.com")

	second := seedUserInput("dup@example.com")
	err := NewUserRepository(db).Create(context.Background(), second)
	assert.True(t, errors.Is(err, repository.ErrUserAlreadyExists))
}

func TestUserRepository_UpdateProfileAndPassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "profile@example.com")
	user.Username = "renamed"
	user.PreferredCuisines = []string{"Thai", "BBQ"}
	user.NotificationRadiusMiles = 12
	user.PushNotificationsEnabled = false
	require.NoError(t, repo.Update(ctx, user))
	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Username)
	assert.Equal(t, []string{"Thai", "BBQ"}, got.PreferredCuisines)
	assert.Equal(t, 12, got.NotificationRadiusMiles)
	assert.False(t, got.PushNotificationsEnabled)
	assert.Equal(t, "new-hash", got.PasswordHash)

	err = repo.UpdatePassword(ctx, uuid.New(), "x")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_FindByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	a := seedUser(t, db, "a@example.com")
	b := seedUser(t, db, "b@example.com")

	users, err := repo.FindByIDs(context.Background(), []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	empty, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
