package handler

import (
	"net/http"
	"testing"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	mockUsecase "trucktrace/internal/mocks/usecase"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: discardLogger()})
	caller := customer()

	e := newTestEcho()
	e.POST("/api/devices", h.RegisterDevice, withPrincipal(caller))
	e.GET("/api/devices", h.GetUserDevices, withPrincipal(caller))
	e.PUT("/api/devices/:id/token", h.UpdateFCMToken, withPrincipal(caller))
	e.PUT("/api/devices/:id/position", h.UpdatePosition, withPrincipal(caller))
	e.DELETE("/api/devices/:id", h.DeleteDevice, withPrincipal(caller))

	deviceID := uuid.New()

	t.Run("register with position", func(t *testing.T) {
		uc.EXPECT().
			RegisterDevice(mock.Anything, caller.User.ID, mock.MatchedBy(func(info *usecase.RegisterDeviceInput) bool {
				return info.FCMToken == "fcm-1" && info.Platform == "ios" &&
					info.Latitude != nil && *info.Latitude == 40.7 && info.Longitude != nil
			})).
			Return(&entity.UserDevice{ID: deviceID, UserID: caller.User.ID, Platform: "ios", IsActive: true}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/devices",
			`{"fcm_token":"fcm-1","device_id":"iphone","platform":"ios","latitude":40.7,"longitude":-74}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Device registered successfully", decode(t, rec).Message)
	})

	t.Run("register validation", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/devices", `{"platform":"blackberry"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldMessages(decode(t, rec))
		assert.Equal(t, "FCM token is required", fields["fcm_token"])
		assert.Equal(t, "Device ID is required", fields["device_id"])
		assert.Equal(t, "Platform must be one of: ios, android, web", fields["platform"])
	})

	t.Run("register with half a position", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/devices",
			`{"fcm_token":"fcm-1","device_id":"iphone","platform":"ios","latitude":40.7}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldMessages(decode(t, rec)), "longitude")
	})

	t.Run("list", func(t *testing.T) {
		uc.EXPECT().GetUserDevices(mock.Anything, caller.User.ID).
			Return([]*entity.UserDevice{{ID: deviceID}}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/devices", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), deviceID.String())
	})

	t.Run("update token of foreign device", func(t *testing.T) {
		uc.EXPECT().UpdateFCMToken(mock.Anything, caller.User.ID, deviceID, "fcm-2").
			Return(errors.WithStack(domainerrors.ErrDeviceOwnershipViolation)).
			Once()

		rec := doRequest(e, http.MethodPut, "/api/devices/"+deviceID.String()+"/token", `{"fcm_token":"fcm-2"}`)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("update position", func(t *testing.T) {
		uc.EXPECT().UpdatePosition(mock.Anything, caller.User.ID, deviceID, 40.7, -74.0).Return(nil).Once()

		rec := doRequest(e, http.MethodPut, "/api/devices/"+deviceID.String()+"/position", `{"latitude":40.7,"longitude":-74}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		uc.EXPECT().DeleteDevice(mock.Anything, caller.User.ID, deviceID).
			Return(errors.WithStack(domainerrors.ErrDeviceNotFound)).
			Once()

		rec := doRequest(e, http.MethodDelete, "/api/devices/"+deviceID.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
