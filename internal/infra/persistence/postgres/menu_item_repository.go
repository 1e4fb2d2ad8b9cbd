package postgres

import (
	"context"
	"strings"
	"time"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/infra/persistence/model"
	"trucktrace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// menuItemRepository implements the repository.MenuItemRepository interface.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{db: db}
}

// Create persists a new menu item.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTruckNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a menu item by primary key.
func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by id")
	}

	return toMenuItemDomain(&itemM), nil
}

// Update overwrites every mutable column of the item.
func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(itemM).
		Select("name", "description", "price", "category", "photo_url",
			"is_available", "is_signature", "dietary_tags", "updated_at").
		Updates(itemM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateAvailability toggles whether the item can be ordered.
func (repo *menuItemRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_available": available,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update menu item availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// Delete removes a menu item by its ID.
func (repo *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// FindByTruck lists the truck's menu, grouped by category.
func (repo *menuItemRepository) FindByTruck(ctx context.Context, truckID uuid.UUID, filter entity.MenuFilter) ([]*entity.MenuItem, error) {
	query := repo.db.WithContext(ctx).Where("truck_id = ?", truckID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.IsSignature != nil {
		query = query.Where("is_signature = ?", *filter.IsSignature)
	}

	var itemModels []*model.MenuItemModel
	if err := query.Order("category ASC").Order("name ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items")
	}

	return toMenuItemDomains(itemModels), nil
}

// Search matches available items by name or description, signature dishes first.
func (repo *menuItemRepository) Search(ctx context.Context, truckID uuid.UUID, term string) ([]*entity.MenuItem, error) {
	pattern := "%" + util.EscapeLike(strings.ToLower(strings.TrimSpace(term))) + "%"

	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Where("truck_id = ? AND is_available = ?", truckID, true).
		Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern).
		Order("is_signature DESC").
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search menu items")
	}

	return toMenuItemDomains(itemModels), nil
}

// Categories returns the distinct non-empty categories of the truck's menu.
func (repo *menuItemRepository) Categories(ctx context.Context, truckID uuid.UUID) ([]string, error) {
	categories := []string{}
	if err := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("truck_id = ? AND category IS NOT NULL AND category <> ''", truckID).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}

	return categories, nil
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	tags := []string(data.DietaryTags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.MenuItem{
		ID:          data.ID,
		TruckID:     data.TruckID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		PhotoURL:    data.PhotoURL,
		IsAvailable: data.IsAvailable,
		IsSignature: data.IsSignature,
		DietaryTags: tags,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toMenuItemDomains(models []*model.MenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(models))
	for _, itemM := range models {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	tags := data.DietaryTags
	if tags == nil {
		tags = []string{}
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		TruckID:     data.TruckID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		PhotoURL:    data.PhotoURL,
		IsAvailable: data.IsAvailable,
		IsSignature: data.IsSignature,
		DietaryTags: datatypes.JSONSlice[string](tags),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
