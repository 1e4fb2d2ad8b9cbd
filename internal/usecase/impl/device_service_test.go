package impl

import (
	"context"
	"testing"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	mockRepo "trucktrace/internal/mocks/repository"
	"trucktrace/internal/usecase"
	"trucktrace/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: discardLogger()})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterDeviceInput{
		FCMToken:  "test-fcm-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		Latitude:  util.Ptr(40.7),
		Longitude: util.Ptr(-74.0),
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, input.FCMToken, device.FCMToken)
	assert.Equal(t, input.DeviceID, device.DeviceID)
	assert.True(t, device.HasPosition())
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}
	updatedDevice := &entity.UserDevice{
		ID:        deviceID,
		UserID:    userID,
		FCMToken:  "new-fcm-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		Latitude:  util.Ptr(40.7),
		Longitude: util.Ptr(-74.0),
		IsActive:  true,
	}

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "device-123").Return(existingDevice, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-fcm-token").Return(nil)
	fx.deviceRepo.EXPECT().UpdatePosition(ctx, deviceID, 40.7, -74.0).Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		FCMToken:  "new-fcm-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		Latitude:  util.Ptr(40.7),
		Longitude: util.Ptr(-74.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_TokenTaken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "device-123").Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{FCMToken: "t", DeviceID: "device-123", Platform: "web"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEntry)
}

func TestDeviceService_UpdateFCMToken_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "token")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestDeviceService_UpdatePosition_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().UpdatePosition(ctx, deviceID, 37.77, -122.42).Return(nil)

	require.NoError(t, fx.service.UpdatePosition(ctx, userID, deviceID, 37.77, -122.42))
}

func TestDeviceService_DeleteDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeleteDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetUserDevices_Empty(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}
