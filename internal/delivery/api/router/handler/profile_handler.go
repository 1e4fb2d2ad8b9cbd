package handler

import (
	"log/slog"
	"net/http"

	"trucktrace/internal/delivery/api/response"
	"trucktrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC, logger: params.Logger}
}

// UpdateProfileRequest is a partial profile update.
type UpdateProfileRequest struct {
	Username                 *string  `json:"username" validate:"omitempty,min=3,max=50,username"`
	ProfilePhotoURL          *string  `json:"profile_photo_url" validate:"omitempty,url,max=500"`
	PreferredCuisines        []string `json:"preferred_cuisines"`
	NotificationRadiusMiles  *int     `json:"notification_radius_miles" validate:"omitempty,min=1,max=50"`
	PushNotificationsEnabled *bool    `json:"push_notifications_enabled"`
}

// ChangePasswordRequest is the body of PUT /api/users/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,password_strength"`
}

// GetProfile returns the caller's user row.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), principal.User.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), principal.User.ID, &usecase.UpdateProfileInput{
		Username:                 req.Username,
		ProfilePhotoURL:          req.ProfilePhotoURL,
		PreferredCuisines:        req.PreferredCuisines,
		NotificationRadiusMiles:  req.NotificationRadiusMiles,
		PushNotificationsEnabled: req.PushNotificationsEnabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// ChangePassword verifies the current password before storing the new one.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.ChangePassword(c.Request().Context(), principal.User.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}
