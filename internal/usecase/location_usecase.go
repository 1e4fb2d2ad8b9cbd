package usecase

import (
	"context"
	"time"

	"trucktrace/internal/domain/entity"
	"trucktrace/internal/domain/geo"

	"github.com/google/uuid"
)

// AddLocationInput represents the input for adding a new location
type AddLocationInput struct {
	Address        string
	Latitude       float64
	Longitude      float64
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	IsCurrent      bool
	Status         entity.LocationStatus
}

// UpdateLocationInput represents the input for updating an existing location
type UpdateLocationInput struct {
	Address        *string
	Latitude       *float64
	Longitude      *float64
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	IsCurrent      *bool
	Status         *entity.LocationStatus
}

// NearbyOutput is the result of a radius search.
type NearbyOutput struct {
	Trucks       []*entity.NearbyTruck `json:"trucks"`
	SearchCenter geo.Point             `json:"search_center"`
	RadiusMiles  float64               `json:"radius_miles"`
	Count        int                   `json:"count"`
}

// TruckSummary identifies a truck in location responses.
type TruckSummary struct {
	ID           uuid.UUID `json:"id"`
	TruckName    string    `json:"truck_name"`
	BusinessName string    `json:"business_name"`
}

// TruckLocationsOutput is a truck's location history.
type TruckLocationsOutput struct {
	Truck     *TruckSummary      `json:"truck"`
	Locations []*entity.Location `json:"locations"`
}

// CurrentLocationOutput holds a truck's current location, nil when it has none.
type CurrentLocationOutput struct {
	Truck           *TruckSummary    `json:"truck"`
	CurrentLocation *entity.Location `json:"current_location"`
}

// LocationUsecase defines the interface for truck location use cases
type LocationUsecase interface {
	NearbyTrucks(ctx context.Context, center geo.Point, radiusMiles float64) (*NearbyOutput, error)
	TruckLocations(ctx context.Context, truckID uuid.UUID, includeScheduled bool) (*TruckLocationsOutput, error)
	CurrentLocation(ctx context.Context, truckID uuid.UUID) (*CurrentLocationOutput, error)

	// CreateLocation and UpdateLocation move the current flag atomically when IsCurrent is set.
	CreateLocation(ctx context.Context, principal *entity.Principal, input *AddLocationInput) (*entity.Location, error)
	UpdateLocation(ctx context.Context, principal *entity.Principal, locationID uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)
	DeleteLocation(ctx context.Context, principal *entity.Principal, locationID uuid.UUID) error
}
