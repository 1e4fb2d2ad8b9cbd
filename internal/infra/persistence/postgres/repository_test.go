package postgres

import (
	"context"
	"testing"
	"time"

	"trucktrace/internal/domain/entity"
	"trucktrace/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedUserInput(email string) *entity.User {
	return &entity.User{
		Username:                 "user_" + uuid.NewString()[:8],
		Email:                    email,
		PasswordHash:             "hash",
		PreferredCuisines:        []string{},
		NotificationRadiusMiles:  entity.DefaultNotificationRadiusMiles,
		PushNotificationsEnabled: true,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := seedUserInput(email)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedTruck(t *testing.T, db *gorm.DB, name string, rating float64, cuisines ...string) *entity.Truck {
	t.Helper()

	owner := seedUser(t, db, uuid.NewString()+"@example.com")
	truck := &entity.Truck{
		OwnerID:       owner.ID,
		BusinessName:  name + " LLC",
		TruckName:     name,
		CuisineTypes:  cuisines,
		AverageRating: rating,
	}
	require.NoError(t, NewTruckRepository(db).Create(context.Background(), truck))

	return truck
}

func seedLocation(t *testing.T, db *gorm.DB, truckID uuid.UUID, lat, lng float64, current bool, createdAt time.Time) *entity.Location {
	t.Helper()

	location := &entity.Location{
		TruckID:   truckID,
		Address:   "Somewhere",
		Latitude:  lat,
		Longitude: lng,
		IsCurrent: current,
		Status:    entity.LocationStatusOpen,
		CreatedAt: createdAt,
	}
	require.NoError(t, NewLocationRepository(db).Create(context.Background(), location))

	return location
}
