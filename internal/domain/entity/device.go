package entity

import (
	"time"

	"trucktrace/internal/domain/geo"

	"github.com/google/uuid"
)

// UserDevice is a push target. One user may register many; DeviceID is unique per user.
type UserDevice struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FCMToken string    `json:"fcm_token"`
	DeviceID string    `json:"device_id"`
	Platform string    `json:"platform"` // ios, android or web
	// Last reported position. Devices without one are never filtered by radius.
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *UserDevice) HasPosition() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// Position returns the last reported point, if both coordinates are known.
func (d *UserDevice) Position() (geo.Point, bool) {
	if !d.HasPosition() {
		return geo.Point{}, false
	}

	return geo.Point{Lat: *d.Latitude, Lng: *d.Longitude}, true
}
