package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/usecase"
	"trucktrace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type menuService struct {
	truckRepo repository.TruckRepository
	menuRepo  repository.MenuItemRepository
	logger    *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	TruckRepo repository.TruckRepository
	MenuRepo  repository.MenuItemRepository
	Logger    *slog.Logger
}

// NewMenuService creates a new menu service instance
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		truckRepo: params.TruckRepo,
		menuRepo:  params.MenuRepo,
		logger:    params.Logger,
	}
}

func (s *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetMenu lists a truck's menu, either filtered or searched.
func (s *menuService) GetMenu(ctx context.Context, truckID uuid.UUID, query usecase.MenuQuery) ([]*entity.MenuItem, error) {
	if _, err := findTruck(ctx, s.truckRepo, truckID); err != nil {
		return nil, err
	}

	var (
		items []*entity.MenuItem
		err   error
	)
	if term := strings.TrimSpace(query.Search); term != "" {
		items, err = s.menuRepo.Search(ctx, truckID, term)
	} else {
		items, err = s.menuRepo.FindByTruck(ctx, truckID, query.Filter)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

// Categories lists the distinct categories of a truck's menu.
func (s *menuService) Categories(ctx context.Context, truckID uuid.UUID) ([]string, error) {
	if _, err := findTruck(ctx, s.truckRepo, truckID); err != nil {
		return nil, err
	}

	categories, err := s.menuRepo.Categories(ctx, truckID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}

	return categories, nil
}

// CreateMenuItem adds an item to the caller's truck.
func (s *menuService) CreateMenuItem(ctx context.Context, principal *entity.Principal, input *usecase.AddMenuItemInput) (*entity.MenuItem, error) {
	if !principal.IsOwner() {
		return nil, errors.WithStack(domainerrors.ErrOwnerRequired)
	}

	item := &entity.MenuItem{
		ID:          uuid.New(),
		TruckID:     principal.Truck.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       roundPrice(input.Price),
		Category:    strings.TrimSpace(input.Category),
		PhotoURL:    input.PhotoURL,
		IsAvailable: true,
		IsSignature: input.IsSignature,
		DietaryTags: nonNilTags(input.DietaryTags),
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrTruckNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTruckNotFound)
		}

		return nil, errors.Wrap(err, "failed to create menu item")
	}

	s.log(ctx).Debug("Menu item created", slog.Any("itemID", item.ID), slog.Any("truckID", item.TruckID))

	return item, nil
}

// UpdateMenuItem applies a partial update to an item of the caller's truck.
func (s *menuService) UpdateMenuItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.findOwnedItem(ctx, principal, itemID)
	if err != nil {
		return nil, err
	}

	applyMenuItemUpdates(item, input)

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, mapMenuItemWriteError(err, "failed to update menu item")
	}

	return item, nil
}

// SetAvailability toggles whether an item can be ordered.
func (s *menuService) SetAvailability(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, available bool) (*entity.MenuItem, error) {
	item, err := s.findOwnedItem(ctx, principal, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.menuRepo.UpdateAvailability(ctx, item.ID, available); err != nil {
		return nil, mapMenuItemWriteError(err, "failed to update menu item availability")
	}
	item.IsAvailable = available

	return item, nil
}

// DeleteMenuItem removes an item of the caller's truck.
func (s *menuService) DeleteMenuItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) error {
	item, err := s.findOwnedItem(ctx, principal, itemID)
	if err != nil {
		return err
	}

	if err := s.menuRepo.Delete(ctx, item.ID); err != nil {
		return mapMenuItemWriteError(err, "failed to delete menu item")
	}

	return nil
}

func (s *menuService) findOwnedItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMenuItemNotFound)
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	if !principal.OwnsTruck(item.TruckID) {
		s.log(ctx).Warn("Menu item ownership violation", slog.Any("itemID", item.ID), slog.Any("truckID", item.TruckID))

		return nil, errors.WithStack(domainerrors.ErrMenuItemOwnershipViolation)
	}

	return item, nil
}

func applyMenuItemUpdates(item *entity.MenuItem, input *usecase.UpdateMenuItemInput) {
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = roundPrice(*input.Price)
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.PhotoURL != nil {
		item.PhotoURL = *input.PhotoURL
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.IsSignature != nil {
		item.IsSignature = *input.IsSignature
	}
	if input.DietaryTags != nil {
		item.DietaryTags = nonNilTags(input.DietaryTags)
	}
}

func mapMenuItemWriteError(err error, message string) error {
	if errors.Is(err, repository.ErrMenuItemNotFound) {
		return errors.WithStack(domainerrors.ErrMenuItemNotFound)
	}

	return errors.Wrap(err, message)
}

// roundPrice keeps two decimal places.
func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

func nonNilTags(tags []string) []string {
	if normalized := util.NormalizeTags(tags); normalized != nil {
		return normalized
	}

	return []string{}
}
