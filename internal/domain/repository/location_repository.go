package repository

import (
	"context"

	"trucktrace/internal/domain/entity"
	"trucktrace/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrLocationNotFound is returned when a location lookup matches no row.
	ErrLocationNotFound = errors.New("location not found")
	// ErrCurrentLocationConflict is returned when a second current location
	// for the same truck is rejected by the storage layer.
	ErrCurrentLocationConflict = errors.New("truck already has a current location")
)

// LocationRepository defines the interface for truck location persistence.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearCurrent unsets is_current on every location of the truck except exceptID.
	ClearCurrent(ctx context.Context, truckID, exceptID uuid.UUID) error
	// FindCurrentByTruck returns ErrLocationNotFound when the truck has no current location.
	FindCurrentByTruck(ctx context.Context, truckID uuid.UUID) (*entity.Location, error)
	FindCurrentByTrucks(ctx context.Context, truckIDs []uuid.UUID) (map[uuid.UUID]*entity.Location, error)
	// FindByTruck lists a truck's locations, newest first. Without includeScheduled
	// only the current location is returned.
	FindByTruck(ctx context.Context, truckID uuid.UUID, includeScheduled bool) ([]*entity.Location, error)
	// FindNearby returns trucks whose current location is within radiusMiles of
	// center, sorted by ascending distance. A non-positive radius yields no rows.
	FindNearby(ctx context.Context, center geo.Point, radiusMiles float64) ([]*entity.NearbyTruck, error)
}
