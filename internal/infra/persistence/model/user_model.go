// Package model holds the GORM table mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID                       uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Username                 string                      `gorm:"type:varchar(50);not null"`
	Email                    string                      `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash             string                      `gorm:"type:varchar(255);not null"`
	ProfilePhotoURL          string                      `gorm:"type:varchar(500)"`
	PreferredCuisines        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	NotificationRadiusMiles  int                         `gorm:"not null"`
	PushNotificationsEnabled bool                        `gorm:"not null"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
