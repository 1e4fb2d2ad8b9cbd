package usecase

import (
	"context"

	"trucktrace/internal/domain/entity"
	"trucktrace/internal/domain/geo"

	"github.com/google/uuid"
)

// DistanceReference annotates favorites with their distance from Point.
type DistanceReference struct {
	Point       geo.Point
	RadiusMiles float64
}

// FavoriteUsecase defines the user's favorites list.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, userID, truckID uuid.UUID) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, truckID uuid.UUID) error
	IsFavorite(ctx context.Context, userID, truckID uuid.UUID) (bool, error)
	// ListFavorites annotates rows when ref is non-nil but never filters them.
	ListFavorites(ctx context.Context, userID uuid.UUID, ref *DistanceReference) ([]*entity.FavoriteTruck, error)
	FavoriteTrucks(ctx context.Context, userID uuid.UUID) ([]*entity.Truck, error)
}
