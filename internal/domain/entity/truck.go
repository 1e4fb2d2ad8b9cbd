package entity

import (
	"time"

	"github.com/google/uuid"
)

// Truck is a food truck profile. Each owner has at most one.
type Truck struct {
	ID            uuid.UUID         `json:"id"`
	OwnerID       uuid.UUID         `json:"owner_id"`
	BusinessName  string            `json:"business_name"`
	TruckName     string            `json:"truck_name"`
	CuisineTypes  []string          `json:"cuisine_types"`
	Description   string            `json:"description,omitempty"`
	LogoURL       string            `json:"logo_url,omitempty"`
	CoverPhotoURL string            `json:"cover_photo_url,omitempty"`
	ContactPhone  string            `json:"contact_phone,omitempty"`
	SocialLinks   map[string]string `json:"social_links,omitempty"`
	AverageRating float64           `json:"average_rating"`
	ReviewCount   int               `json:"review_count"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// TruckFilter narrows a truck listing. Zero values disable a filter.
type TruckFilter struct {
	CuisineTypes []string
	Search       string
	Limit        int
}

// TruckWithLocation is a truck listed together with its current location, if any.
type TruckWithLocation struct {
	*Truck
	CurrentLocation *Location `json:"current_location"`
}

// NearbyTruck is a truck found by a radius search.
type NearbyTruck struct {
	*Truck
	CurrentLocation *Location `json:"current_location"`
	DistanceMiles   float64   `json:"distance_miles"`
}

// RankedTruck is a truck annotated with how many users favorited it.
type RankedTruck struct {
	*Truck
	FavoriteCount int64 `json:"favorite_count"`
}

// TruckDetail is the public profile of a truck.
type TruckDetail struct {
	*Truck
	CurrentLocation *Location   `json:"current_location"`
	Locations       []*Location `json:"locations,omitempty"`
	MenuItems       []*MenuItem `json:"menu_items"`
	FavoriteCount   int64       `json:"favorite_count"`
	IsFavorite      *bool       `json:"is_favorite,omitempty"`
}
