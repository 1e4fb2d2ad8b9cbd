package handler

import (
	"log/slog"
	"net/http"

	"trucktrace/internal/delivery/api/middleware"
	"trucktrace/internal/delivery/api/response"
	"trucktrace/internal/delivery/api/validator"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken  string   `json:"fcm_token" validate:"required,max=255"`
	DeviceID  string   `json:"device_id" validate:"required,max=255"`
	Platform  string   `json:"platform" validate:"required,oneof=ios android web"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
}

// UpdatePositionRequest carries a device's last known coordinates
type UpdatePositionRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNoToken)
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		field := "latitude"
		if req.Longitude == nil {
			field = "longitude"
		}

		return response.HandleAppError(c, validator.Invalid(field))
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.RegisterDeviceInput{
		FCMToken:  req.FCMToken,
		DeviceID:  req.DeviceID,
		Platform:  req.Platform,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNoToken)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNoToken)
	}

	deviceID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "FCM token updated successfully")
}

// UpdatePosition handles updating a device's last known position
func (h *DeviceHandler) UpdatePosition(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNoToken)
	}

	deviceID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePositionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdatePosition(c.Request().Context(), userID, deviceID, *req.Latitude, *req.Longitude); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device position updated successfully")
}

// DeleteDevice handles removing a device
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNoToken)
	}

	deviceID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deleted successfully")
}
