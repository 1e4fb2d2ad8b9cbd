// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"trucktrace/config"
	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/domain/service"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	truckRepo    repository.TruckRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	debug        bool
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TruckRepo    repository.TruckRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		truckRepo:    params.TruckRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		debug:        params.Config != nil && params.Config.Env.Debug,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer creates a user without a truck.
func (srv *authService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting customer registration", slog.String("email", email))

	if err := srv.ensureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	user, err := srv.buildUser(input.Username, email, input.Password)
	if err != nil {
		return nil, err
	}
	user.ProfilePhotoURL = input.ProfilePhotoURL
	user.PreferredCuisines = nonNilTags(input.PreferredCuisines)
	if input.NotificationRadiusMiles != nil {
		user.NotificationRadiusMiles = *input.NotificationRadiusMiles
	}
	if input.PushNotificationsEnabled != nil {
		user.PushNotificationsEnabled = *input.PushNotificationsEnabled
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapUserCreateError(err)
	}

	return srv.issue(ctx, user, nil)
}

// RegisterOwner creates the owner and their truck atomically.
func (srv *authService) RegisterOwner(ctx context.Context, input *usecase.RegisterOwnerInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting owner registration", slog.String("email", email))

	if err := srv.ensureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	user, err := srv.buildUser(input.Username, email, input.Password)
	if err != nil {
		return nil, err
	}
	truck := newTruckEntity(user.ID, &input.Truck)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return mapUserCreateError(err)
		}
		if err := repoFactory.NewTruckRepository().Create(ctx, truck); err != nil {
			return mapTruckCreateError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute owner registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute owner registration transaction")
	}

	srv.log(ctx).Debug("Owner registration completed", slog.Any("userID", user.ID), slog.Any("truckID", truck.ID))

	return srv.issue(ctx, user, truck)
}

// LoginCustomer rejects users that own a truck.
func (srv *authService) LoginCustomer(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, truck, err := srv.authenticate(ctx, input)
	if err != nil {
		return nil, err
	}
	if truck != nil {
		return nil, errors.WithStack(domainerrors.ErrUseOwnerPortal)
	}

	return srv.issue(ctx, user, nil)
}

// LoginOwner rejects users without a truck.
func (srv *authService) LoginOwner(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, truck, err := srv.authenticate(ctx, input)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, errors.WithStack(domainerrors.ErrUseCustomerPortal)
	}

	return srv.issue(ctx, user, truck)
}

// authenticate verifies the password before anything about the account's role is revealed.
func (srv *authService) authenticate(ctx context.Context, input *usecase.LoginInput) (*entity.User, *entity.Truck, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

			return nil, nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	truck, err := srv.findOwnedTruck(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, truck, nil
}

// ForgotPassword mints a reset token bound to the current password hash.
func (srv *authService) ForgotPassword(ctx context.Context, email string) (*usecase.ForgotPasswordOutput, error) {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email", slog.String("email", email))

			return &usecase.ForgotPasswordOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	token, err := srv.tokenService.GenerateResetToken(user.ID, user.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	srv.log(ctx).Debug("Password reset token issued", slog.Any("userID", user.ID), slog.String("reset_token", token))

	output := &usecase.ForgotPasswordOutput{}
	if srv.debug {
		output.ResetToken = token
	}

	return output, nil
}

// ResetPassword stores a new hash once the reset token checks out.
func (srv *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := srv.tokenService.ValidateResetToken(token, func(id uuid.UUID) (string, error) {
		user, err := srv.userRepo.FindByID(ctx, id)
		if err != nil {
			return "", err
		}

		return user.PasswordHash, nil
	})
	if err != nil {
		srv.log(ctx).Warn("Rejected password reset token", slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrResetTokenInvalid)
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return nil
}

// ResolvePrincipal turns a bearer token into the caller and its role.
func (srv *authService) ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := srv.tokenService.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.WithStack(domainerrors.ErrTokenExpired)
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTokenUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}

	truck, err := srv.findOwnedTruck(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return entity.ResolvePrincipal(user, truck), nil
}

func (srv *authService) ensureEmailAvailable(ctx context.Context, email string) error {
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Email already registered", slog.String("email", email))

		return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

func (srv *authService) buildUser(username, email, password string) (*entity.User, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return &entity.User{
		ID:                       uuid.New(),
		Username:                 strings.TrimSpace(username),
		Email:                    email,
		PasswordHash:             hash,
		PreferredCuisines:        []string{},
		NotificationRadiusMiles:  entity.DefaultNotificationRadiusMiles,
		PushNotificationsEnabled: true,
	}, nil
}

func (srv *authService) findOwnedTruck(ctx context.Context, userID uuid.UUID) (*entity.Truck, error) {
	truck, err := srv.truckRepo.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTruckNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find owned truck")
	}

	return truck, nil
}

func (srv *authService) issue(ctx context.Context, user *entity.User, truck *entity.Truck) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{User: user, Truck: truck, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapUserCreateError(err error) error {
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	}

	return errors.Wrap(err, "failed to create user")
}
