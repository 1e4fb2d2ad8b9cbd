// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"trucktrace/internal/domain/entity"
)

// RegisterCustomerInput defines the data required to create a customer account.
type RegisterCustomerInput struct {
	Username                 string
	Email                    string
	Password                 string
	ProfilePhotoURL          string
	PreferredCuisines        []string
	NotificationRadiusMiles  *int
	PushNotificationsEnabled *bool
}

// RegisterOwnerInput defines the data required to create an owner and their truck.
type RegisterOwnerInput struct {
	Username string
	Email    string
	Password string
	Truck    CreateTruckInput
}

// LoginInput holds email/password credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is returned by registration and login. Truck is set for owners only.
type AuthOutput struct {
	User  *entity.User  `json:"user"`
	Truck *entity.Truck `json:"truck,omitempty"`
	Token string        `json:"token"`
}

// ForgotPasswordOutput carries the reset token when the server runs in debug mode.
type ForgotPasswordOutput struct {
	ResetToken string `json:"reset_token,omitempty"`
}

// AuthUsecase defines account creation, session issuance and caller resolution.
type AuthUsecase interface {
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*AuthOutput, error)
	// RegisterOwner creates the user and the truck in one transaction.
	RegisterOwner(ctx context.Context, input *RegisterOwnerInput) (*AuthOutput, error)
	LoginCustomer(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	LoginOwner(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ForgotPassword never reveals whether the email exists.
	ForgotPassword(ctx context.Context, email string) (*ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, token, newPassword string) error

	// ResolvePrincipal validates a bearer token and loads the caller with its role.
	ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error)
}
