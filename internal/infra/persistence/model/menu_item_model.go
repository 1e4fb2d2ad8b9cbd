package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	TruckID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Price       float64                     `gorm:"type:decimal(10,2);not null"`
	Category    string                      `gorm:"type:varchar(100)"`
	PhotoURL    string                      `gorm:"type:varchar(500)"`
	IsAvailable bool                        `gorm:"not null"`
	IsSignature bool                        `gorm:"not null"`
	DietaryTags datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Truck *FoodTruckModel `gorm:"foreignKey:TruckID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
