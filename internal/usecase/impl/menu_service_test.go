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

type menuServiceFixtures struct {
	service   usecase.MenuUsecase
	truckRepo *mockRepo.MockTruckRepository
	menuRepo  *mockRepo.MockMenuItemRepository
}

func createTestMenuService(t *testing.T) menuServiceFixtures {
	fx := menuServiceFixtures{
		truckRepo: mockRepo.NewMockTruckRepository(t),
		menuRepo:  mockRepo.NewMockMenuItemRepository(t),
	}

	fx.service = NewMenuService(MenuServiceParams{
		TruckRepo: fx.truckRepo,
		MenuRepo:  fx.menuRepo,
		Logger:    discardLogger(),
	})

	return fx
}

func TestMenuService_GetMenu(t *testing.T) {
	truck := &entity.Truck{ID: uuid.New()}

	t.Run("filtered listing", func(t *testing.T) {
		fx := createTestMenuService(t)
		ctx := context.Background()
		filter := entity.MenuFilter{Category: "Tacos", IsSignature: util.Ptr(true)}

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(truck, nil)
		fx.menuRepo.EXPECT().FindByTruck(ctx, truck.ID, filter).Return([]*entity.MenuItem{{Name: "Al Pastor"}}, nil)

		items, err := fx.service.GetMenu(ctx, truck.ID, usecase.MenuQuery{Filter: filter})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("search wins over filter", func(t *testing.T) {
		fx := createTestMenuService(t)
		ctx := context.Background()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(truck, nil)
		fx.menuRepo.EXPECT().Search(ctx, truck.ID, "pastor").Return([]*entity.MenuItem{}, nil)

		_, err := fx.service.GetMenu(ctx, truck.ID, usecase.MenuQuery{
			Filter: entity.MenuFilter{Category: "Tacos"},
			Search: "  pastor ",
		})
		require.NoError(t, err)
	})

	t.Run("unknown truck", func(t *testing.T) {
		fx := createTestMenuService(t)
		ctx := context.Background()

		fx.truckRepo.EXPECT().FindByID(ctx, truck.ID).Return(nil, repository.ErrTruckNotFound)

		_, err := fx.service.GetMenu(ctx, truck.ID, usecase.MenuQuery{})
		assert.ErrorIs(t, err, domainerrors.ErrTruckNotFound)
	})
}

func TestMenuService_CreateMenuItem(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fx := createTestMenuService(t)
		ctx := context.Background()
		owner := testOwner()

		fx.menuRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MenuItem")).Return(nil)

		item, err := fx.service.CreateMenuItem(ctx, owner, &usecase.AddMenuItemInput{
			Name:        " Al Pastor ",
			Price:       3.499,
			Category:    "Tacos",
			DietaryTags: []string{"spicy", "Spicy"},
		})
		require.NoError(t, err)
		assert.Equal(t, owner.Truck.ID, item.TruckID)
		assert.Equal(t, "Al Pastor", item.Name)
		assert.InDelta(t, 3.5, item.Price, 0.0001)
		assert.True(t, item.IsAvailable)
		assert.Equal(t, []string{"spicy"}, item.DietaryTags)
	})

	t.Run("explicitly unavailable", func(t *testing.T) {
		fx := createTestMenuService(t)
		ctx := context.Background()

		fx.menuRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

		item, err := fx.service.CreateMenuItem(ctx, testOwner(), &usecase.AddMenuItemInput{
			Name:        "Horchata",
			Price:       2,
			IsAvailable: util.Ptr(false),
		})
		require.NoError(t, err)
		assert.False(t, item.IsAvailable)
		assert.Equal(t, []string{}, item.DietaryTags)
	})

	t.Run("customer rejected", func(t *testing.T) {
		fx := createTestMenuService(t)

		_, err := fx.service.CreateMenuItem(context.Background(), testCustomer(), &usecase.AddMenuItemInput{Name: "x", Price: 1})
		assert.ErrorIs(t, err, domainerrors.ErrOwnerRequired)
	})
}

func TestMenuService_SetAvailability(t *testing.T) {
	t.Run("own item", func(t *testing.T) {
		fx := createTestMenuService(t)
		ctx := context.Background()
		owner := testOwner()
		item := &entity.MenuItem{ID: uuid.New(), TruckID: owner.Truck.ID, IsAvailable: true}

		fx.menuRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.menuRepo.EXPECT().UpdateAvailability(ctx, item.ID, false).Return(nil)

		updated, err := fx.service.SetAvailability(ctx, owner, item.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.IsAvailable)
	})

	t.Run("foreign item", func(t *testing.T) {
		fx := createTestMenuService(t)
		ctx := context.Background()
		item := &entity.MenuItem{ID: uuid.New(), TruckID: uuid.New()}

		fx.menuRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

		_, err := fx.service.SetAvailability(ctx, testOwner(), item.ID, false)
		assert.ErrorIs(t, err, domainerrors.ErrMenuItemOwnershipViolation)
	})
}

func TestMenuService_UpdateMenuItem_Partial(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	owner := testOwner()
	item := &entity.MenuItem{ID: uuid.New(), TruckID: owner.Truck.ID, Name: "Al Pastor", Price: 3.5, Category: "Tacos"}

	fx.menuRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.menuRepo.EXPECT().Update(ctx, item).Return(nil)

	updated, err := fx.service.UpdateMenuItem(ctx, owner, item.ID, &usecase.UpdateMenuItemInput{Price: util.Ptr(4.0)})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, updated.Price, 0.0001)
	assert.Equal(t, "Al Pastor", updated.Name)
	assert.Equal(t, "Tacos", updated.Category)
}

func TestMenuService_DeleteMenuItem_Missing(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.menuRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMenuItemNotFound)

	err := fx.service.DeleteMenuItem(ctx, testOwner(), id)
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}
