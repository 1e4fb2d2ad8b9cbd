package impl

import (
	"context"
	"testing"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	mockRepo "trucktrace/internal/mocks/repository"
	mockSvc "trucktrace/internal/mocks/service"
	"trucktrace/internal/usecase"
	"trucktrace/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		userRepo: mockRepo.NewMockUserRepository(t),
		hasher:   mockSvc.NewMockPasswordHasher(t),
	}

	fx.service = NewProfileService(ProfileServiceParams{
		UserRepo: fx.userRepo,
		Hasher:   fx.hasher,
		Logger:   discardLogger(),
	})

	return fx
}

func TestProfileService_UpdateProfile_Partial(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{
		ID:                       uuid.New(),
		Username:                 "ann",
		PreferredCuisines:        []string{"Thai"},
		NotificationRadiusMiles:  5,
		PushNotificationsEnabled: true,
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		NotificationRadiusMiles:  util.Ptr(12),
		PushNotificationsEnabled: util.Ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "ann", updated.Username)
	assert.Equal(t, []string{"Thai"}, updated.PreferredCuisines)
	assert.Equal(t, 12, updated.NotificationRadiusMiles)
	assert.False(t, updated.PushNotificationsEnabled)
}

func TestProfileService_GetProfile_Missing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_ChangePassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	t.Run("success", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("OldSecret1", "old-hash").Return(true)
		fx.hasher.EXPECT().Hash("NewSecret1").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil)

		require.NoError(t, fx.service.ChangePassword(ctx, user.ID, "OldSecret1", "NewSecret1"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("guess", "old-hash").Return(false)

		err := fx.service.ChangePassword(ctx, user.ID, "guess", "NewSecret1")
		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
	})
}
