package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. The partial unique index keeps
// at most one current row per truck.
type LocationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_locations_current_truck,where:is_current = true"`
	Address        string    `gorm:"type:varchar(255)"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	IsCurrent      bool   `gorm:"not null;index"`
	Status         string `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Truck *FoodTruckModel `gorm:"foreignKey:TruckID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
