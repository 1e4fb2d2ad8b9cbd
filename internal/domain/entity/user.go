// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNotificationRadiusMiles is applied when a user does not choose a radius.
const DefaultNotificationRadiusMiles = 5

// User represents a TruckTrace account. Whether the account acts as a customer or
// a truck owner is decided by Principal, not by a field on the user.
type User struct {
	ID                       uuid.UUID `json:"id"`
	Username                 string    `json:"username"`
	Email                    string    `json:"email"`
	PasswordHash             string    `json:"-"`
	ProfilePhotoURL          string    `json:"profile_photo_url,omitempty"`
	PreferredCuisines        []string  `json:"preferred_cuisines"`
	NotificationRadiusMiles  int       `json:"notification_radius_miles"`
	PushNotificationsEnabled bool      `json:"push_notifications_enabled"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// AlertRadiusMiles is how far from a device a truck may open and still trigger a push.
func (u *User) AlertRadiusMiles() float64 {
	if u.NotificationRadiusMiles <= 0 {
		return DefaultNotificationRadiusMiles
	}

	return float64(u.NotificationRadiusMiles)
}
