package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table, keyed by the (user, truck) pair.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	User  *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Truck *FoodTruckModel `gorm:"foreignKey:TruckID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
