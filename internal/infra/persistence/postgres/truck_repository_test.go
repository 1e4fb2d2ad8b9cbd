package postgres

import (
	"context"
	"testing"
	"time"

	"trucktrace/internal/domain/entity"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func truckNames(trucks []*entity.Truck) []string {
	names := make([]string, 0, len(trucks))
	for _, truck := range trucks {
		names = append(names, truck.TruckName)
	}

	return names
}

func TestTruckRepository_CreateAndFindByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewTruckRepository(db)
	ctx := context.Background()

	truck := seedTruck(t, db, "Taco Loco", 4.5, "Mexican", "Street Food")

	got, err := repo.FindByOwner(ctx, truck.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, truck.ID, got.ID)
	assert.Equal(t, []string{"Mexican", "Street Food"}, got.CuisineTypes)
	assert.Equal(t, map[string]string{}, got.SocialLinks)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrTruckNotFound))
}

func TestTruckRepository_OneTruckPerOwner(t *testing.T) {
	db := newTestDB(t)
	truck := seedTruck(t, db, "First", 0, "BBQ")

	err := NewTruckRepository(db).Create(context.Background(), &entity.Truck{
		OwnerID:      truck.OwnerID,
		BusinessName: "Second LLC",
		TruckName:    "Second",
		CuisineTypes: []string{"BBQ"},
	})
	assert.True(t, errors.Is(err, repository.ErrTruckAlreadyExists))
}

func TestTruckRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewTruckRepository(db)
	ctx := context.Background()

	seedTruck(t, db, "Taco Loco", 4.8, "Mexican")
	seedTruck(t, db, "Smoke House", 4.2, "BBQ", "American")
	seedTruck(t, db, "Taco Town", 3.9, "mexican", "Fusion")
	seedTruck(t, db, "Pho Real", 4.9, "Vietnamese")

	all, err := repo.Search(ctx, entity.TruckFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pho Real", "Taco Loco", "Smoke House", "Taco Town"}, truckNames(all))

	byName, err := repo.Search(ctx, entity.TruckFilter{Search: "TACO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Taco Loco", "Taco Town"}, truckNames(byName))

	byBusiness, err := repo.Search(ctx, entity.TruckFilter{Search: "house llc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Smoke House"}, truckNames(byBusiness))

	byCuisine, err := repo.Search(ctx, entity.TruckFilter{CuisineTypes: []string{"MEXICAN", "vietnamese"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pho Real", "Taco Loco", "Taco Town"}, truckNames(byCuisine))

	limited, err := repo.Search(ctx, entity.TruckFilter{CuisineTypes: []string{"mexican"}, Search: "town", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Taco Town"}, truckNames(limited))

	wildcard, err := repo.Search(ctx, entity.TruckFilter{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, wildcard)
}

func TestTruckRepository_UpdateReplacesCuisines(t *testing.T) {
	db := newTestDB(t)
	repo := NewTruckRepository(db)
	ctx := context.Background()

	truck := seedTruck(t, db, "Old Name", 0, "Mexican", "BBQ")
	truck.TruckName = "New Name"
	truck.CuisineTypes = []string{"Thai"}
	truck.SocialLinks = map[string]string{"instagram": "@newname"}
	require.NoError(t, repo.Update(ctx, truck))

	got, err := repo.FindByID(ctx, truck.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.TruckName)
	assert.Equal(t, []string{"Thai"}, got.CuisineTypes)
	assert.Equal(t, "@newname", got.SocialLinks["instagram"])

	missing := &entity.Truck{ID: uuid.New(), TruckName: "x", BusinessName: "y"}
	assert.True(t, errors.Is(repo.Update(ctx, missing), repository.ErrTruckNotFound))
}

func TestTruckRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewTruckRepository(db)
	ctx := context.Background()

	truck := seedTruck(t, db, "Gone", 0, "BBQ")
	customer := seedUser(t, db, "fan@example.com")
	seedLocation(t, db, truck.ID, 40.0, -74.0, true, time.Now())
	require.NoError(t, NewMenuItemRepository(db).Create(ctx, &entity.MenuItem{TruckID: truck.ID, Name: "Brisket", Price: 12}))
	_, err := NewFavoriteRepository(db).Add(ctx, &entity.Favorite{UserID: customer.ID, TruckID: truck.ID})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, truck.ID))

	for _, table := range []any{&model.LocationModel{}, &model.MenuItemModel{}, &model.FavoriteModel{}, &model.TruckCuisineModel{}} {
		var count int64
		require.NoError(t, db.Model(table).Where("truck_id = ?", truck.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	assert.True(t, errors.Is(repo.Delete(ctx, truck.ID), repository.ErrTruckNotFound))
}
