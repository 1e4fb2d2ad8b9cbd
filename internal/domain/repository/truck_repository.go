package repository

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTruckNotFound is returned when a truck lookup matches no row.
	ErrTruckNotFound = errors.New("truck not found")
	// ErrTruckAlreadyExists is returned when the owner already has a truck.
	ErrTruckAlreadyExists = errors.New("owner already has a truck")
)

// TruckRepository defines the interface for truck data persistence.
type TruckRepository interface {
	Create(ctx context.Context, truck *entity.Truck) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Truck, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Truck, error)
	// Search filters by name substring and cuisine intersection, ordered by rating then review count.
	Search(ctx context.Context, filter entity.TruckFilter) ([]*entity.Truck, error)
	// Update overwrites the truck's columns and replaces its cuisine set.
	Update(ctx context.Context, truck *entity.Truck) error
	Delete(ctx context.Context, id uuid.UUID) error
}
