package repository

import (
	"context"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMenuItemNotFound is returned when a menu item lookup matches no row.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the interface for menu persistence.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByTruck lists items ordered by category then name.
	FindByTruck(ctx context.Context, truckID uuid.UUID, filter entity.MenuFilter) ([]*entity.MenuItem, error)
	// Search matches name or description, available items only, signature items first.
	Search(ctx context.Context, truckID uuid.UUID, term string) ([]*entity.MenuItem, error)
	Categories(ctx context.Context, truckID uuid.UUID) ([]string, error)
}
