package impl

import (
	"context"
	"testing"

	"trucktrace/config"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	mockRepo "trucktrace/internal/mocks/repository"
	mockSvc "trucktrace/internal/mocks/service"
	"trucktrace/internal/usecase"
	"trucktrace/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type truckServiceFixtures struct {
	service      usecase.TruckUsecase
	truckRepo    *mockRepo.MockTruckRepository
	locationRepo *mockRepo.MockLocationRepository
	menuRepo     *mockRepo.MockMenuItemRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	qrcode       *mockSvc.MockQRCodeService
}

func createTestTruckService(t *testing.T) truckServiceFixtures {
	fx := truckServiceFixtures{
		truckRepo:    mockRepo.NewMockTruckRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		menuRepo:     mockRepo.NewMockMenuItemRepository(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewTruckService(TruckServiceParams{
		TruckRepo:    fx.truckRepo,
		LocationRepo: fx.locationRepo,
		MenuRepo:     fx.menuRepo,
		FavoriteRepo: fx.favoriteRepo,
		QRCode:       fx.qrcode,
		Config:       &config.Config{Search: &config.SearchConfig{TopDefaultLimit: 10, TopMaxLimit: 50}},
		Logger:       discardLogger(),
	})

	return fx
}

func TestTruckService_ListTrucks_AttachesCurrentLocation(t *testing.T) {
	fx := createTestTruckService(t)
	ctx := context.Background()

	withLocation := &entity.Truck{ID: uuid.New(), TruckName: "Taco Wheels"}
	withoutLocation := &entity.Truck{ID: uuid.New(), TruckName: "Bao Bus"}
	current := &entity.Location{ID: uuid.New(), TruckID: withLocation.ID, IsCurrent: true}

	fx.truckRepo.EXPECT().
		Search(ctx, entity.TruckFilter{CuisineTypes: []string{"Mexican"}, Search: "taco"}).
		Return([]*entity.Truck{withLocation, withoutLocation}, nil)
	fx.locationRepo.EXPECT().
		FindCurrentByTrucks(ctx, []uuid.UUID{withLocation.ID, withoutLocation.ID}).
		Return(map[uuid.UUID]*entity.Location{withLocation.ID: current}, nil)

	trucks, err := fx.service.ListTrucks(ctx, entity.TruckFilter{CuisineTypes: []string{" Mexican ", "mexican"}, Search: " taco "})

	require.NoError(t, err)
	require.Len(t, trucks, 2)
	assert.Equal(t, current, trucks[0].CurrentLocation)
	assert.Nil(t, trucks[1].CurrentLocation)
}

func TestTruckService_TopTrucks_ClampsLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "default", limit: 0, expected: 10},
		{name: "within range", limit: 25, expected: 25},
		{name: "above max", limit: 500, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTruckService(t)
			ctx := context.Background()

			fx.favoriteRepo.EXPECT().FindTopTrucks(ctx, tt.expected).Return([]*entity.RankedTruck{}, nil)

			_, err := fx.service.TopTrucks(ctx, tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestTruckService_GetTruckDetail(t *testing.T) {
	truck := &entity.Truck{ID: uuid.New(), TruckName: "Taco Wheels"}
	available := entity.MenuFilter{IsAvailable: util.Ptr(true)}
	items := []*entity.MenuItem{{ID: uuid.New(), TruckID: truck.ID, Name: "Al Pastor", IsAvailable: true}}

	t.Run("anonymous viewer", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(truck, nil)
		fx.locationRepo.EXPECT().FindCurrentByTruck(ctx, truck.ID).Return(nil, repository.ErrLocationNotFound)
		fx.menuRepo.EXPECT().FindByTruck(ctx, truck.ID, available).Return(items, nil)
		fx.favoriteRepo.EXPECT().CountByTruck(ctx, truck.ID).Return(int64(3), nil)

		detail, err := fx.service.GetTruckDetail(ctx, truck.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, detail.CurrentLocation)
		assert.Nil(t, detail.IsFavorite)
		assert.Equal(t, int64(3), detail.FavoriteCount)
		assert.Equal(t, items, detail.MenuItems)
	})

	t.Run("signed in viewer", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		viewer := testCustomer()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(truck, nil)
		fx.locationRepo.EXPECT().FindCurrentByTruck(ctx, truck.ID).Return(nil, repository.ErrLocationNotFound)
		fx.menuRepo.EXPECT().FindByTruck(ctx, truck.ID, available).Return(items, nil)
		fx.favoriteRepo.EXPECT().CountByTruck(ctx, truck.ID).Return(int64(1), nil)
		fx.favoriteRepo.EXPECT().Exists(ctx, viewer.User.ID, truck.ID).Return(true, nil)

		detail, err := fx.service.GetTruckDetail(ctx, truck.ID, viewer)
		require.NoError(t, err)
		require.NotNil(t, detail.IsFavorite)
		assert.True(t, *detail.IsFavorite)
	})

	t.Run("unknown truck", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(nil, repository.ErrTruckNotFound)

		_, err := fx.service.GetTruckDetail(ctx, truck.ID, nil)
		assert.ErrorIs(t, err, domainerrors.ErrTruckNotFound)
	})
}

func TestTruckService_MyTruck(t *testing.T) {
	t.Run("customer has no truck", func(t *testing.T) {
		fx := createTestTruckService(t)

		_, err := fx.service.MyTruck(context.Background(), testCustomer())
		assert.ErrorIs(t, err, domainerrors.ErrOwnerTruckNotFound)
	})

	t.Run("owner sees full menu and history", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		owner := testOwner()
		locations := []*entity.Location{{ID: uuid.New(), TruckID: owner.Truck.ID}}

		fx.truckRepo.EXPECT().FindByID(ctx, owner.Truck.ID).Return(owner.Truck, nil)
		fx.locationRepo.EXPECT().FindCurrentByTruck(ctx, owner.Truck.ID).Return(nil, repository.ErrLocationNotFound)
		fx.menuRepo.EXPECT().FindByTruck(ctx, owner.Truck.ID, entity.MenuFilter{}).Return([]*entity.MenuItem{}, nil)
		fx.favoriteRepo.EXPECT().CountByTruck(ctx, owner.Truck.ID).Return(int64(0), nil)
		fx.locationRepo.EXPECT().FindByTruck(ctx, owner.Truck.ID, true).Return(locations, nil)

		detail, err := fx.service.MyTruck(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, locations, detail.Locations)
	})
}

func TestTruckService_CreateTruck(t *testing.T) {
	t.Run("owner already has a truck", func(t *testing.T) {
		fx := createTestTruckService(t)

		_, err := fx.service.CreateTruck(context.Background(), testOwner(), &usecase.CreateTruckInput{TruckName: "Second"})
		assert.ErrorIs(t, err, domainerrors.ErrTruckAlreadyExists)
	})

	t.Run("customer becomes owner", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		customer := testCustomer()

		fx.truckRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Truck")).Return(nil)

		truck, err := fx.service.CreateTruck(ctx, customer, &usecase.CreateTruckInput{
			BusinessName: " Bao LLC ",
			TruckName:    "Bao Bus",
		})
		require.NoError(t, err)
		assert.Equal(t, customer.User.ID, truck.OwnerID)
		assert.Equal(t, "Bao LLC", truck.BusinessName)
		assert.Equal(t, []string{}, truck.CuisineTypes)
	})
}

func TestTruckService_UpdateTruck(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		owner := testOwner()
		stored := *owner.Truck

		fx.truckRepo.EXPECT().FindByID(ctx, stored.ID).Return(&stored, nil)
		fx.truckRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Truck")).Return(nil)

		truck, err := fx.service.UpdateTruck(ctx, owner, stored.ID, &usecase.UpdateTruckInput{
			TruckName: util.Ptr("Taco Wheels 2"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Taco Wheels 2", truck.TruckName)
		assert.Equal(t, "Chef LLC", truck.BusinessName)
	})

	t.Run("foreign truck", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		other := &entity.Truck{ID: uuid.New(), OwnerID: uuid.New()}

		fx.truckRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

		_, err := fx.service.UpdateTruck(ctx, testOwner(), other.ID, &usecase.UpdateTruckInput{})
		assert.ErrorIs(t, err, domainerrors.ErrTruckOwnershipViolation)
	})

	t.Run("missing truck is reported before ownership", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		missing := uuid.New()

		fx.truckRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrTruckNotFound)

		_, err := fx.service.UpdateTruck(ctx, testCustomer(), missing, &usecase.UpdateTruckInput{})
		assert.ErrorIs(t, err, domainerrors.ErrTruckNotFound)
	})
}

func TestTruckService_DeleteTruck(t *testing.T) {
	t.Run("owner deletes own truck", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		owner := testOwner()

		fx.truckRepo.EXPECT().FindByID(ctx, owner.Truck.ID).Return(owner.Truck, nil)
		fx.truckRepo.EXPECT().Delete(ctx, owner.Truck.ID).Return(nil)

		require.NoError(t, fx.service.DeleteTruck(ctx, owner, owner.Truck.ID))
	})

	t.Run("foreign truck", func(t *testing.T) {
		fx := createTestTruckService(t)
		ctx := context.Background()
		other := &entity.Truck{ID: uuid.New(), OwnerID: uuid.New()}

		fx.truckRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

		err := fx.service.DeleteTruck(ctx, testOwner(), other.ID)
		assert.ErrorIs(t, err, domainerrors.ErrTruckDeleteOwnershipViolation)
	})
}

func TestTruckService_TruckQRCode(t *testing.T) {
	fx := createTestTruckService(t)
	ctx := context.Background()
	truck := &entity.Truck{ID: uuid.New()}

	fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(truck, nil)
	fx.qrcode.EXPECT().GenerateTruckQR(truck.ID).Return([]byte("png"), nil)

	png, err := fx.service.TruckQRCode(ctx, truck.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
