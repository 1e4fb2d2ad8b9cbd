package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is a dish offered by a truck.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	TruckID     uuid.UUID `json:"truck_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	IsSignature bool      `json:"is_signature"`
	DietaryTags []string  `json:"dietary_tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuFilter narrows a menu listing. Nil pointers disable a filter.
type MenuFilter struct {
	Category    string
	IsAvailable *bool
	IsSignature *bool
}
