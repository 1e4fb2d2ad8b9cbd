package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationStatus is the operating state of a truck at a location.
type LocationStatus string

const (
	LocationStatusOpen        LocationStatus = "open"
	LocationStatusClosingSoon LocationStatus = "closing_soon"
	LocationStatusClosed      LocationStatus = "closed"
)

// IsValid checks if the status is one of the known values.
func (s LocationStatus) IsValid() bool {
	switch s {
	case LocationStatusOpen, LocationStatusClosingSoon, LocationStatusClosed:
		return true
	default:
		return false
	}
}

// Location is one entry in a truck's position history. At most one location
// per truck has IsCurrent set.
type Location struct {
	ID             uuid.UUID      `json:"id"`
	TruckID        uuid.UUID      `json:"truck_id"`
	Address        string         `json:"address,omitempty"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	ScheduledStart *time.Time     `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time     `json:"scheduled_end,omitempty"`
	IsCurrent      bool           `json:"is_current"`
	Status         LocationStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsScheduled reports whether the location carries a time window.
func (l *Location) IsScheduled() bool {
	return l.ScheduledStart != nil || l.ScheduledEnd != nil
}
