package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user-truck relation. It is only ever created or deleted.
type Favorite struct {
	UserID    uuid.UUID `json:"user_id"`
	TruckID   uuid.UUID `json:"truck_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteTruck is a favorited truck as shown in a user's list. Distance fields
// are only set when the caller supplied a reference point.
type FavoriteTruck struct {
	*Truck
	FavoritedAt     time.Time `json:"favorited_at"`
	CurrentLocation *Location `json:"current_location"`
	DistanceMiles   *float64  `json:"distance_miles"`
	IsWithinRadius  *bool     `json:"is_within_radius,omitempty"`
}
