package postgres

import (
	"context"
	"strings"

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

// truckRepository implements the repository.TruckRepository interface.
type truckRepository struct {
	db *gorm.DB
}

// NewTruckRepository is the constructor for truckRepository.
func NewTruckRepository(db *gorm.DB) repository.TruckRepository {
	return &truckRepository{db: db}
}

func orderedCuisines(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create persists the truck together with its cuisine tags.
func (repo *truckRepository) Create(ctx context.Context, truck *entity.Truck) error {
	if truck.ID == uuid.Nil {
		truck.ID = uuid.New()
	}
	truckM := fromTruckDomain(truck)

	if err := repo.db.WithContext(ctx).Create(truckM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTruckAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create truck")
	}

	truck.CreatedAt = truckM.CreatedAt
	truck.UpdatedAt = truckM.UpdatedAt

	return nil
}

// FindByID retrieves a truck by primary key.
func (repo *truckRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByOwner retrieves the truck owned by the user.
func (repo *truckRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Truck, error) {
	return repo.findOne(ctx, "owner_id = ?", ownerID)
}

func (repo *truckRepository) findOne(ctx context.Context, query string, arg any) (*entity.Truck, error) {
	var truckM model.FoodTruckModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Cuisines", orderedCuisines).
		Where(query, arg).
		First(&truckM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTruckNotFound
		}

		return nil, errors.Wrap(err, "failed to find truck")
	}

	return toTruckDomain(&truckM), nil
}

// FindByIDs loads the trucks among ids that exist, in no particular order.
func (repo *truckRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Truck, error) {
	if len(ids) == 0 {
		return []*entity.Truck{}, nil
	}

	var truckModels []*model.FoodTruckModel
	if err := repo.db.WithContext(ctx).
		Preload("Cuisines", orderedCuisines).
		Where("id IN ?", ids).
		Find(&truckModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find trucks by ids")
	}

	return toTruckDomains(truckModels), nil
}

// Search lists trucks matching the filter, best rated first.
func (repo *truckRepository) Search(ctx context.Context, filter entity.TruckFilter) ([]*entity.Truck, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.FoodTruckModel{}).
		Preload("Cuisines", orderedCuisines)

	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		pattern := "%" + util.EscapeLike(term) + "%"
		query = query.Where(`(LOWER(truck_name) LIKE ? ESCAPE '\' OR LOWER(business_name) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	if cuisines := util.NormalizeTags(filter.CuisineTypes); len(cuisines) > 0 {
		matching := repo.db.Model(&model.TruckCuisineModel{}).
			Select("truck_id").
			Where("LOWER(cuisine) IN ?", util.LowerAll(cuisines))
		query = query.Where("id IN (?)", matching)
	}

	query = query.Order("average_rating DESC").Order("review_count DESC").Order("truck_name ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var truckModels []*model.FoodTruckModel
	if err := query.Find(&truckModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search trucks")
	}

	return toTruckDomains(truckModels), nil
}

// Update overwrites the truck columns and replaces its cuisine set atomically.
func (repo *truckRepository) Update(ctx context.Context, truck *entity.Truck) error {
	truckM := fromTruckDomain(truck)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(truckM).
			Select("business_name", "truck_name", "description", "logo_url", "cover_photo_url",
				"contact_phone", "social_links", "average_rating", "review_count", "updated_at").
			Updates(truckM)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to update truck")
		}
		if result.RowsAffected == 0 {
			return repository.ErrTruckNotFound
		}

		if err := tx.Where("truck_id = ?", truck.ID).Delete(&model.TruckCuisineModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear truck cuisines")
		}
		if len(truckM.Cuisines) > 0 {
			if err := tx.Create(&truckM.Cuisines).Error; err != nil {
				return errors.Wrap(err, "failed to store truck cuisines")
			}
		}

		truck.UpdatedAt = truckM.UpdatedAt

		return nil
	})
}

// Delete removes the truck and every row that belongs to it.
func (repo *truckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{
			&model.FavoriteModel{},
			&model.MenuItemModel{},
			&model.LocationModel{},
			&model.TruckCuisineModel{},
		} {
			if err := tx.Where("truck_id = ?", id).Delete(child).Error; err != nil {
				return errors.Wrap(err, "failed to delete truck children")
			}
		}

		result := tx.Where("id = ?", id).Delete(&model.FoodTruckModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete truck")
		}
		if result.RowsAffected == 0 {
			return repository.ErrTruckNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

func toTruckDomain(data *model.FoodTruckModel) *entity.Truck {
	if data == nil {
		return nil
	}

	cuisines := make([]string, 0, len(data.Cuisines))
	for _, c := range data.Cuisines {
		cuisines = append(cuisines, c.Cuisine)
	}

	return &entity.Truck{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		BusinessName:  data.BusinessName,
		TruckName:     data.TruckName,
		CuisineTypes:  cuisines,
		Description:   data.Description,
		LogoURL:       data.LogoURL,
		CoverPhotoURL: data.CoverPhotoURL,
		ContactPhone:  data.ContactPhone,
		SocialLinks:   data.SocialLinks.Data(),
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toTruckDomains(models []*model.FoodTruckModel) []*entity.Truck {
	trucks := make([]*entity.Truck, 0, len(models))
	for _, truckM := range models {
		trucks = append(trucks, toTruckDomain(truckM))
	}

	return trucks
}

func fromTruckDomain(data *entity.Truck) *model.FoodTruckModel {
	if data == nil {
		return nil
	}

	// The join table is keyed by exact spelling.
	seen := make(map[string]struct{}, len(data.CuisineTypes))
	cuisines := make([]model.TruckCuisineModel, 0, len(data.CuisineTypes))
	for _, c := range data.CuisineTypes {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		cuisines = append(cuisines, model.TruckCuisineModel{
			TruckID:  data.ID,
			Cuisine:  c,
			Position: len(cuisines),
		})
	}

	links := data.SocialLinks
	if links == nil {
		links = map[string]string{}
	}

	return &model.FoodTruckModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		BusinessName:  data.BusinessName,
		TruckName:     data.TruckName,
		Description:   data.Description,
		LogoURL:       data.LogoURL,
		CoverPhotoURL: data.CoverPhotoURL,
		ContactPhone:  data.ContactPhone,
		SocialLinks:   datatypes.NewJSONType(links),
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Cuisines:      cuisines,
	}
}
