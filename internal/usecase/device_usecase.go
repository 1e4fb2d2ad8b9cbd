package usecase

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries a push registration. A position is only stored
// when both coordinates are present.
type RegisterDeviceInput struct {
	FCMToken  string
	DeviceID  string
	Platform  string
	Latitude  *float64
	Longitude *float64
}

// DeviceUsecase manages the caller's push targets. Methods taking a device ID
// reject devices of other users with ErrDeviceOwnershipViolation.
type DeviceUsecase interface {
	// RegisterDevice is an upsert keyed by (user, client device ID).
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	UpdatePosition(ctx context.Context, userID, deviceID uuid.UUID, latitude, longitude float64) error
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
