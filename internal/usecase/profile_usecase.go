package usecase

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase reads and edits the caller's own account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	// ChangePassword answers ErrCurrentPasswordIncorrect when currentPassword does not match.
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// UpdateProfileInput leaves a field untouched when it is nil. A non-nil empty
// PreferredCuisines clears the list.
type UpdateProfileInput struct {
	Username                 *string
	ProfilePhotoURL          *string
	PreferredCuisines        []string
	NotificationRadiusMiles  *int
	PushNotificationsEnabled *bool
}
