// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"trucktrace/internal/delivery/api/response"
	"trucktrace/internal/domain/entity"
	"trucktrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for registration, login and password reset.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC, logger: params.Logger}
}

type credentials struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,password_strength"`
}

// RegisterCustomerRequest is the body of POST /api/auth/register/customer.
type RegisterCustomerRequest struct {
	credentials
	ProfilePhotoURL          string   `json:"profile_photo_url" validate:"omitempty,url,max=500"`
	PreferredCuisines        []string `json:"preferred_cuisines"`
	NotificationRadiusMiles  *int     `json:"notification_radius_miles" validate:"omitempty,min=1,max=50"`
	PushNotificationsEnabled *bool    `json:"push_notifications_enabled"`
}

// RegisterOwnerRequest is the body of POST /api/auth/register/owner.
type RegisterOwnerRequest struct {
	credentials
	TruckProfileRequest
}

// LoginRequest holds email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,password_strength"`
}

// MeResponse is the caller with its truck, null for customers.
type MeResponse struct {
	User  *entity.User  `json:"user"`
	Truck *entity.Truck `json:"truck"`
}

// RegisterCustomer handles customer sign-up.
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.RegisterCustomer(c.Request().Context(), &usecase.RegisterCustomerInput{
		Username:                 req.Username,
		Email:                    req.Email,
		Password:                 req.Password,
		ProfilePhotoURL:          req.ProfilePhotoURL,
		PreferredCuisines:        req.PreferredCuisines,
		NotificationRadiusMiles:  req.NotificationRadiusMiles,
		PushNotificationsEnabled: req.PushNotificationsEnabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Customer registration successful")
}

// RegisterOwner handles owner sign-up together with the truck profile.
func (h *AuthHandler) RegisterOwner(c echo.Context) error {
	var req RegisterOwnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.RegisterOwner(c.Request().Context(), &usecase.RegisterOwnerInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Truck:    req.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Owner registration successful")
}

// LoginCustomer handles the customer portal login.
func (h *AuthHandler) LoginCustomer(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.LoginCustomer(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Customer login successful")
}

// LoginOwner handles the owner portal login.
func (h *AuthHandler) LoginOwner(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.LoginOwner(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Owner login successful")
}

// Me returns the principal resolved by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MeResponse{User: principal.User, Truck: principal.Truck}, "")
}

// ForgotPassword always answers 200 so callers cannot probe for accounts.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var data any
	if output.ResetToken != "" {
		data = output
	}

	return response.Success(c, http.StatusOK, data, "If the email exists, a reset link has been sent")
}

// ResetPassword sets a new password from a reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successful")
}
