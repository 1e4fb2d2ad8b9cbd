package impl

import (
	"context"
	"log/slog"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	existing, err := s.deviceRepo.FindDeviceByUserAndDeviceID(ctx, userID, input.DeviceID)
	switch {
	case err == nil:
		return s.refreshDevice(ctx, existing, input)
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device by user")
	}

	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  input.FCMToken,
		DeviceID:  input.DeviceID,
		Platform:  input.Platform,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsActive:  true,
	}
	if !device.HasPosition() {
		device.Latitude, device.Longitude = nil, nil
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.WithStack(domainerrors.ErrDuplicateEntry)
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	s.log(ctx).Info("Device registered", slog.Any("userID", userID), slog.String("platform", device.Platform))

	return device, nil
}

func (s *deviceService) refreshDevice(ctx context.Context, device *entity.UserDevice, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, input.FCMToken); err != nil {
		return nil, mapDeviceError(err, "failed to update FCM token")
	}

	if input.Latitude != nil && input.Longitude != nil {
		if err := s.deviceRepo.UpdatePosition(ctx, device.ID, *input.Latitude, *input.Longitude); err != nil {
			return nil, errors.Wrap(err, "failed to update device position")
		}
	}

	updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return updated, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return mapDeviceError(err, "failed to update FCM token")
	}

	return nil
}

// UpdatePosition stores the device's last known coordinates
func (s *deviceService) UpdatePosition(ctx context.Context, userID, deviceID uuid.UUID, latitude, longitude float64) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdatePosition(ctx, deviceID, latitude, longitude); err != nil {
		return mapDeviceError(err, "failed to update device position")
	}

	return nil
}

// GetUserDevices retrieves all devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}
	if devices == nil {
		devices = []*entity.UserDevice{}
	}

	return devices, nil
}

// DeleteDevice removes a device
func (s *deviceService) DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return mapDeviceError(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, mapDeviceError(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		s.log(ctx).Warn("Device ownership violation", slog.Any("userID", userID), slog.Any("deviceID", deviceID))

		return nil, errors.WithStack(domainerrors.ErrDeviceOwnershipViolation)
	}

	return device, nil
}

func mapDeviceError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDeviceNotFound):
		return errors.WithStack(domainerrors.ErrDeviceNotFound)
	case errors.Is(err, repository.ErrDuplicateDevice):
		return errors.WithStack(domainerrors.ErrDuplicateEntry)
	default:
		return errors.Wrap(err, message)
	}
}
