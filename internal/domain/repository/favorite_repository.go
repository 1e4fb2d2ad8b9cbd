package repository

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFavoriteNotFound is returned when removing a pair that does not exist.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the interface for user-truck favorites.
type FavoriteRepository interface {
	// Add inserts the pair. It reports false, without error, when the pair already exists.
	Add(ctx context.Context, favorite *entity.Favorite) (bool, error)
	Remove(ctx context.Context, userID, truckID uuid.UUID) error
	Exists(ctx context.Context, userID, truckID uuid.UUID) (bool, error)
	// FindByUser lists favorited trucks, most recently favorited first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteTruck, error)
	CountByTruck(ctx context.Context, truckID uuid.UUID) (int64, error)
	// FindTopTrucks ranks trucks by favorite count, descending.
	FindTopTrucks(ctx context.Context, limit int) ([]*entity.RankedTruck, error)
	// FindPushSubscriberIDs returns users who favorited the truck and enabled push notifications.
	FindPushSubscriberIDs(ctx context.Context, truckID uuid.UUID) ([]uuid.UUID, error)
}
