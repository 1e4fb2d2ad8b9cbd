package postgres

import (
	"context"
	"testing"

	"trucktrace/internal/domain/entity"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemNames(items []*entity.MenuItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	return names
}

func seedMenu(t *testing.T, repo repository.MenuItemRepository, truckID uuid.UUID) {
	t.Helper()

	for _, item := range []*entity.MenuItem{
		{Name: "Carnitas Taco", Category: "Tacos", Price: 4.5, IsAvailable: true, IsSignature: true, DietaryTags: []string{"gluten-free"}},
		{Name: "Al Pastor Taco", Category: "Tacos", Price: 4.25, IsAvailable: true},
		{Name: "Horchata", Category: "Drinks", Price: 3, IsAvailable: true, Description: "Rice milk, cinnamon"},
		{Name: "Veggie Taco", Category: "Tacos", Price: 4, IsAvailable: false, Description: "Seasonal"},
		{Name: "Chips", Price: 2, IsAvailable: true},
	} {
		item.TruckID = truckID
		require.NoError(t, repo.Create(context.Background(), item))
	}
}

func TestMenuItemRepository_FindByTruckFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)
	ctx := context.Background()
	truck := seedTruck(t, db, "Menu", 0, "Mexican")
	seedMenu(t, repo, truck.ID)

	all, err := repo.FindByTruck(ctx, truck.ID, entity.MenuFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chips", "Horchata", "Al Pastor Taco", "Carnitas Taco", "Veggie Taco"}, itemNames(all))

	tacos, err := repo.FindByTruck(ctx, truck.ID, entity.MenuFilter{Category: "Tacos", IsAvailable: util.Ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Al Pastor Taco", "Carnitas Taco"}, itemNames(tacos))

	signature, err := repo.FindByTruck(ctx, truck.ID, entity.MenuFilter{IsSignature: util.Ptr(true)})
	require.NoError(t, err)
	require.Len(t, signature, 1)
	assert.Equal(t, []string{"gluten-free"}, signature[0].DietaryTags)
}

func TestMenuItemRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)
	ctx := context.Background()
	truck := seedTruck(t, db, "Menu", 0, "Mexican")
	seedMenu(t, repo, truck.ID)

	tacos, err := repo.Search(ctx, truck.ID, "taco")
	require.NoError(t, err)
	assert.Equal(t, []string{"Carnitas Taco", "Al Pastor Taco"}, itemNames(tacos))

	byDescription, err := repo.Search(ctx, truck.ID, "CINNAMON")
	require.NoError(t, err)
	assert.Equal(t, []string{"Horchata"}, itemNames(byDescription))

	unavailable, err := repo.Search(ctx, truck.ID, "seasonal")
	require.NoError(t, err)
	assert.Empty(t, unavailable)
}

func TestMenuItemRepository_CategoriesAndMutations(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)
	ctx := context.Background()
	truck := seedTruck(t, db, "Menu", 0, "Mexican")
	seedMenu(t, repo, truck.ID)

	categories, err := repo.Categories(ctx, truck.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drinks", "Tacos"}, categories)

	items, err := repo.FindByTruck(ctx, truck.ID, entity.MenuFilter{Category: "Drinks"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	drink := items[0]

	require.NoError(t, repo.UpdateAvailability(ctx, drink.ID, false))
	drink.Price = 3.5
	drink.IsAvailable = false
	require.NoError(t, repo.Update(ctx, drink))

	got, err := repo.FindByID(ctx, drink.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	assert.InDelta(t, 3.5, got.Price, 0.001)

	require.NoError(t, repo.Delete(ctx, drink.ID))
	_, err = repo.FindByID(ctx, drink.ID)
	assert.True(t, errors.Is(err, repository.ErrMenuItemNotFound))
	assert.True(t, errors.Is(repo.UpdateAvailability(ctx, drink.ID, true), repository.ErrMenuItemNotFound))
}
