package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/domain/service"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

// UpdateProfile applies a partial update to the user's profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}
	if input.ProfilePhotoURL != nil {
		user.ProfilePhotoURL = *input.ProfilePhotoURL
	}
	if input.PreferredCuisines != nil {
		user.PreferredCuisines = nonNilTags(input.PreferredCuisines)
	}
	if input.NotificationRadiusMiles != nil {
		user.NotificationRadiusMiles = *input.NotificationRadiusMiles
	}
	if input.PushNotificationsEnabled != nil {
		user.PushNotificationsEnabled = *input.PushNotificationsEnabled
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (srv *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(currentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch", slog.Any("userID", userID))

		return errors.WithStack(domainerrors.ErrCurrentPasswordIncorrect)
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

func (srv *profileService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
