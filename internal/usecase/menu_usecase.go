package usecase

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
)

// AddMenuItemInput defines a new menu item for the caller's truck.
type AddMenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	PhotoURL    string
	IsAvailable *bool
	IsSignature bool
	DietaryTags []string
}

// UpdateMenuItemInput is a partial update. Nil fields are left unchanged.
type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	PhotoURL    *string
	IsAvailable *bool
	IsSignature *bool
	DietaryTags []string
}

// MenuQuery selects a truck's menu. A non-empty Search ignores Filter.
type MenuQuery struct {
	Filter entity.MenuFilter
	Search string
}

// MenuUsecase defines menu browsing and management.
type MenuUsecase interface {
	GetMenu(ctx context.Context, truckID uuid.UUID, query MenuQuery) ([]*entity.MenuItem, error)
	Categories(ctx context.Context, truckID uuid.UUID) ([]string, error)

	CreateMenuItem(ctx context.Context, principal *entity.Principal, input *AddMenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error)
	SetAvailability(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, available bool) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) error
}
