package usecase

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTruckInput defines the fields of a new truck profile.
type CreateTruckInput struct {
	BusinessName  string
	TruckName     string
	CuisineTypes  []string
	Description   string
	LogoURL       string
	CoverPhotoURL string
	ContactPhone  string
	SocialLinks   map[string]string
}

// UpdateTruckInput is a partial update. Nil fields are left unchanged.
type UpdateTruckInput struct {
	BusinessName  *string
	TruckName     *string
	CuisineTypes  []string
	Description   *string
	LogoURL       *string
	CoverPhotoURL *string
	ContactPhone  *string
	SocialLinks   map[string]string
}

// TruckUsecase defines truck discovery and profile management.
type TruckUsecase interface {
	ListTrucks(ctx context.Context, filter entity.TruckFilter) ([]*entity.TruckWithLocation, error)
	// TopTrucks clamps limit to the configured default and maximum.
	TopTrucks(ctx context.Context, limit int) ([]*entity.RankedTruck, error)
	MyTruck(ctx context.Context, principal *entity.Principal) (*entity.TruckDetail, error)
	// GetTruckDetail sets IsFavorite only when viewer is non-nil.
	GetTruckDetail(ctx context.Context, truckID uuid.UUID, viewer *entity.Principal) (*entity.TruckDetail, error)
	TruckQRCode(ctx context.Context, truckID uuid.UUID) ([]byte, error)

	CreateTruck(ctx context.Context, principal *entity.Principal, input *CreateTruckInput) (*entity.Truck, error)
	UpdateTruck(ctx context.Context, principal *entity.Principal, truckID uuid.UUID, input *UpdateTruckInput) (*entity.Truck, error)
	DeleteTruck(ctx context.Context, principal *entity.Principal, truckID uuid.UUID) error
}
