// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindDeviceByUserAndDeviceID retrieves the device a client registered under deviceID.
	FindDeviceByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	// FindActiveDevicesByUsers retrieves all active devices belonging to any of the users.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// UpdatePosition stores the device's last known coordinates.
	UpdatePosition(ctx context.Context, deviceID uuid.UUID, latitude, longitude float64) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevicesByTokens removes every device registered with one of the FCM tokens.
	DeleteDevicesByTokens(ctx context.Context, tokens []string) (int64, error)
}
