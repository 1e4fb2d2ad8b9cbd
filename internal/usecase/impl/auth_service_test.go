package impl

import (
	"context"
	"testing"

	"trucktrace/config"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/domain/service"
	mockRepo "trucktrace/internal/mocks/repository"
	mockSvc "trucktrace/internal/mocks/service"
	"trucktrace/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	truckRepo    *mockRepo.MockTruckRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T, debug bool) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		truckRepo:    mockRepo.NewMockTruckRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		TruckRepo:    fx.truckRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Config:       cfg,
		Logger:       discardLogger(),
	})

	return fx
}

func TestAuthService_RegisterCustomer_Success(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret123").Return("hashed", nil)

	var created *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { created = user }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("access-token", nil)

	out, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Username:          " ann ",
		Email:             "  Ann@Example.com ",
		Password:          "Secret123",
		PreferredCuisines: []string{"Tacos", "tacos", " BBQ "},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "access-token", out.Token)
	assert.Nil(t, out.Truck)
	assert.Equal(t, "ann", created.Username)
	assert.Equal(t, "ann@example.com", created.Email)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.Equal(t, []string{"Tacos", "BBQ"}, created.PreferredCuisines)
	assert.Equal(t, entity.DefaultNotificationRadiusMiles, created.NotificationRadiusMiles)
	assert.True(t, created.PushNotificationsEnabled)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestAuthService_RegisterCustomer_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	out, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Username: "ann",
		Email:    "ann@example.com",
		Password: "Secret123",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_RegisterOwner_CreatesUserAndTruckInTransaction(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret123").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTruckRepo := mockRepo.NewMockTruckRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewTruckRepository().Return(txTruckRepo)
			txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			txTruckRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(truck *entity.Truck) bool {
					return truck.TruckName == "Taco Wheels" && truck.OwnerID != uuid.Nil
				})).
				Return(nil)

			return fn(factory)
		})
	fx.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("access-token", nil)

	out, err := fx.service.RegisterOwner(ctx, &usecase.RegisterOwnerInput{
		Username: "chef",
		Email:    "owner@example.com",
		Password: "Secret123",
		Truck: usecase.CreateTruckInput{
			BusinessName: "Chef LLC",
			TruckName:    "Taco Wheels",
			CuisineTypes: []string{"Mexican"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, out.Truck)
	assert.Equal(t, out.User.ID, out.Truck.OwnerID)
	assert.Equal(t, []string{"Mexican"}, out.Truck.CuisineTypes)
	assert.NotNil(t, out.Truck.SocialLinks)
}

func TestAuthService_RegisterOwner_TruckFailureRollsBack(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret123").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTruckRepo := mockRepo.NewMockTruckRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewTruckRepository().Return(txTruckRepo)
			txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
			txTruckRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrTruckAlreadyExists)

			return fn(factory)
		})

	out, err := fx.service.RegisterOwner(ctx, &usecase.RegisterOwnerInput{
		Username: "chef",
		Email:    "owner@example.com",
		Password: "Secret123",
		Truck:    usecase.CreateTruckInput{BusinessName: "Chef LLC", TruckName: "Taco Wheels"},
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrTruckAlreadyExists)
}

func TestAuthService_Login_PortalChecks(t *testing.T) {
	customer := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "hash"}
	owner := &entity.User{ID: uuid.New(), Email: "chef@example.com", PasswordHash: "hash"}
	truck := &entity.Truck{ID: uuid.New(), OwnerID: owner.ID}

	t.Run("customer portal rejects owner", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
		fx.hasher.EXPECT().Check("Secret123", "hash").Return(true)
		fx.truckRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(truck, nil)

		_, err := fx.service.LoginCustomer(ctx, &usecase.LoginInput{Email: owner.Email, Password: "Secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrUseOwnerPortal)
	})

	t.Run("owner portal rejects customer", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
		fx.hasher.EXPECT().Check("Secret123", "hash").Return(true)
		fx.truckRepo.EXPECT().FindByOwner(ctx, customer.ID).Return(nil, repository.ErrTruckNotFound)

		_, err := fx.service.LoginOwner(ctx, &usecase.LoginInput{Email: customer.Email, Password: "Secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrUseCustomerPortal)
	})

	t.Run("owner login returns truck", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
		fx.hasher.EXPECT().Check("Secret123", "hash").Return(true)
		fx.truckRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(truck, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(owner.ID).Return("access-token", nil)

		out, err := fx.service.LoginOwner(ctx, &usecase.LoginInput{Email: "CHEF@example.com", Password: "Secret123"})
		require.NoError(t, err)
		assert.Equal(t, truck, out.Truck)
		assert.Equal(t, "access-token", out.Token)
	})

	t.Run("wrong password does not reveal role", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.LoginCustomer(ctx, &usecase.LoginInput{Email: owner.Email, Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.LoginOwner(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "Secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "hash"}

	t.Run("unknown email succeeds silently", func(t *testing.T) {
		fx := createTestAuthService(t, true)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		out, err := fx.service.ForgotPassword(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Empty(t, out.ResetToken)
	})

	t.Run("debug exposes token", func(t *testing.T) {
		fx := createTestAuthService(t, true)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.tokenService.EXPECT().GenerateResetToken(user.ID, "hash").Return("reset-token", nil)

		out, err := fx.service.ForgotPassword(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, "reset-token", out.ResetToken)
	})

	t.Run("production hides token", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.tokenService.EXPECT().GenerateResetToken(user.ID, "hash").Return("reset-token", nil)

		out, err := fx.service.ForgotPassword(ctx, user.Email)
		require.NoError(t, err)
		assert.Empty(t, out.ResetToken)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateResetToken("reset-token", mock.Anything).Return(userID, nil)
		fx.hasher.EXPECT().Hash("NewSecret1").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)

		require.NoError(t, fx.service.ResetPassword(ctx, "reset-token", "NewSecret1"))
	})

	t.Run("lookup reads current hash", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "old-hash"}, nil)
		fx.tokenService.EXPECT().
			ValidateResetToken("reset-token", mock.Anything).
			RunAndReturn(func(_ string, lookup service.PasswordHashLookup) (uuid.UUID, error) {
				hash, err := lookup(userID)
				if err != nil || hash != "old-hash" {
					return uuid.Nil, service.ErrTokenInvalid
				}

				return userID, nil
			})
		fx.hasher.EXPECT().Hash("NewSecret1").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)

		require.NoError(t, fx.service.ResetPassword(ctx, "reset-token", "NewSecret1"))
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateResetToken("stale", mock.Anything).Return(uuid.Nil, service.ErrTokenInvalid)

		err := fx.service.ResetPassword(ctx, "stale", "NewSecret1")
		assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
	})
}

func TestAuthService_ResolvePrincipal(t *testing.T) {
	user := &entity.User{ID: uuid.New()}
	claims := &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()}}

	t.Run("owner", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()
		truck := &entity.Truck{ID: uuid.New(), OwnerID: user.ID}

		fx.tokenService.EXPECT().ValidateAccessToken("token").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.truckRepo.EXPECT().FindByOwner(ctx, user.ID).Return(truck, nil)

		principal, err := fx.service.ResolvePrincipal(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleOwner, principal.Role)
		assert.True(t, principal.OwnsTruck(truck.ID))
	})

	t.Run("customer", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateAccessToken("token").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.truckRepo.EXPECT().FindByOwner(ctx, user.ID).Return(nil, repository.ErrTruckNotFound)

		principal, err := fx.service.ResolvePrincipal(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleCustomer, principal.Role)
		assert.False(t, principal.IsOwner())
	})

	t.Run("expired", func(t *testing.T) {
		fx := createTestAuthService(t, false)

		fx.tokenService.EXPECT().ValidateAccessToken("token").Return(nil, errors.WithStack(service.ErrTokenExpired))

		_, err := fx.service.ResolvePrincipal(context.Background(), "token")
		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		fx := createTestAuthService(t, false)

		fx.tokenService.EXPECT().ValidateAccessToken("token").Return(nil, service.ErrTokenInvalid)

		_, err := fx.service.ResolvePrincipal(context.Background(), "token")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateAccessToken("token").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ResolvePrincipal(ctx, "token")
		assert.ErrorIs(t, err, domainerrors.ErrTokenUserNotFound)
	})
}
