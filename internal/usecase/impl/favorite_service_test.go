package impl

import (
	"context"
	"testing"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/geo"
	"trucktrace/internal/domain/repository"
	mockRepo "trucktrace/internal/mocks/repository"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	truckRepo    *mockRepo.MockTruckRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	fx := favoriteServiceFixtures{
		truckRepo:    mockRepo.NewMockTruckRepository(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
	}

	fx.service = NewFavoriteService(FavoriteServiceParams{
		TruckRepo:    fx.truckRepo,
		FavoriteRepo: fx.favoriteRepo,
		Logger:       discardLogger(),
	})

	return fx
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	userID := uuid.New()
	truck := &entity.Truck{ID: uuid.New()}

	t.Run("first add", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		ctx := context.Background()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(truck, nil)
		fx.favoriteRepo.EXPECT().Add(ctx, mock.AnythingOfType("*entity.Favorite")).Return(true, nil)

		favorite, err := fx.service.AddFavorite(ctx, userID, truck.ID)
		require.NoError(t, err)
		assert.Equal(t, userID, favorite.UserID)
		assert.Equal(t, truck.ID, favorite.TruckID)
	})

	t.Run("second add", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		ctx := context.Background()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(truck, nil)
		fx.favoriteRepo.EXPECT().Add(ctx, mock.Anything).Return(false, nil)

		_, err := fx.service.AddFavorite(ctx, userID, truck.ID)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyFavorited)
	})

	t.Run("unknown truck", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		ctx := context.Background()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(nil, repository.ErrTruckNotFound)

		_, err := fx.service.AddFavorite(ctx, userID, truck.ID)
		assert.ErrorIs(t, err, domainerrors.ErrTruckNotFound)
	})
}

func TestFavoriteService_RemoveFavorite_Missing(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID, truckID := uuid.New(), uuid.New()

	fx.favoriteRepo.EXPECT().Remove(ctx, userID, truckID).Return(repository.ErrFavoriteNotFound)

	err := fx.service.RemoveFavorite(ctx, userID, truckID)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_ListFavorites_AnnotatesWithoutFiltering(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	near := &entity.FavoriteTruck{
		Truck:           &entity.Truck{ID: uuid.New()},
		CurrentLocation: &entity.Location{Latitude: 40.7128, Longitude: -74.0060},
	}
	far := &entity.FavoriteTruck{
		Truck:           &entity.Truck{ID: uuid.New()},
		CurrentLocation: &entity.Location{Latitude: 34.0522, Longitude: -118.2437},
	}
	parked := &entity.FavoriteTruck{Truck: &entity.Truck{ID: uuid.New()}}

	fx.favoriteRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.FavoriteTruck{near, far, parked}, nil)

	favorites, err := fx.service.ListFavorites(ctx, userID, &usecase.DistanceReference{
		Point:       geo.Point{Lat: 40.7306, Lng: -73.9352},
		RadiusMiles: 10,
	})

	require.NoError(t, err)
	require.Len(t, favorites, 3)

	require.NotNil(t, favorites[0].DistanceMiles)
	assert.Less(t, *favorites[0].DistanceMiles, 10.0)
	assert.True(t, *favorites[0].IsWithinRadius)

	require.NotNil(t, favorites[1].DistanceMiles)
	assert.Greater(t, *favorites[1].DistanceMiles, 2000.0)
	assert.False(t, *favorites[1].IsWithinRadius)

	assert.Nil(t, favorites[2].DistanceMiles)
	assert.False(t, *favorites[2].IsWithinRadius)
}

func TestFavoriteService_ListFavorites_NoReference(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().FindByUser(ctx, userID).Return(nil, nil)

	favorites, err := fx.service.ListFavorites(ctx, userID, nil)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}
