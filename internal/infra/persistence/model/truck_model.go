package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FoodTruckModel mirrors the 'food_trucks' table. OwnerID is unique: one truck per owner.
type FoodTruckModel struct {
	ID            uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID                             `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName  string                                `gorm:"type:varchar(255);not null"`
	TruckName     string                                `gorm:"type:varchar(255);not null"`
	Description   string                                `gorm:"type:text"`
	LogoURL       string                                `gorm:"type:varchar(500)"`
	CoverPhotoURL string                                `gorm:"type:varchar(500)"`
	ContactPhone  string                                `gorm:"type:varchar(20)"`
	SocialLinks   datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	AverageRating float64                               `gorm:"type:decimal(3,2);not null"`
	ReviewCount   int                                   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner    *UserModel          `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Cuisines []TruckCuisineModel `gorm:"foreignKey:TruckID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FoodTruckModel) TableName() string {
	return "food_trucks"
}

// TruckCuisineModel mirrors the 'truck_cuisines' join table. Cuisine tags are
// stored as given and compared lowercased.
type TruckCuisineModel struct {
	TruckID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Cuisine  string    `gorm:"type:varchar(100);primaryKey"`
	Position int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TruckCuisineModel) TableName() string {
	return "truck_cuisines"
}
