package postgres

import (
	"context"
	"time"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the pair, ignoring an existing one.
func (repo *favoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) (bool, error) {
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		TruckID:   favorite.TruckID,
		CreatedAt: favorite.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrTruckNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add favorite")
	}

	return result.RowsAffected > 0, nil
}

// Remove deletes the pair.
func (repo *favoriteRepository) Remove(ctx context.Context, userID, truckID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND truck_id = ?", userID, truckID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// Exists reports whether the user favorited the truck.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, truckID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND truck_id = ?", userID, truckID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// FindByUser lists the user's favorite trucks with their current location.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteTruck, error) {
	var favoriteModels []*model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Preload("Truck.Cuisines", orderedCuisines).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites")
	}

	truckIDs := make([]uuid.UUID, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		truckIDs = append(truckIDs, favoriteM.TruckID)
	}

	current, err := NewLocationRepository(repo.db).FindCurrentByTrucks(ctx, truckIDs)
	if err != nil {
		return nil, err
	}

	favorites := make([]*entity.FavoriteTruck, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		if favoriteM.Truck == nil {
			continue
		}

		favorites = append(favorites, &entity.FavoriteTruck{
			Truck:           toTruckDomain(favoriteM.Truck),
			FavoritedAt:     favoriteM.CreatedAt,
			CurrentLocation: current[favoriteM.TruckID],
		})
	}

	return favorites, nil
}

// CountByTruck returns how many users favorited the truck.
func (repo *favoriteRepository) CountByTruck(ctx context.Context, truckID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("truck_id = ?", truckID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count favorites")
	}

	return count, nil
}

type truckFavoriteCount struct {
	TruckID       uuid.UUID
	FavoriteCount int64
}

// FindTopTrucks ranks every truck by favorite count. Trucks without favorites rank with zero.
func (repo *favoriteRepository) FindTopTrucks(ctx context.Context, limit int) ([]*entity.RankedTruck, error) {
	query := repo.db.WithContext(ctx).
		Table("food_trucks").
		Select("food_trucks.id AS truck_id, COUNT(favorites.truck_id) AS favorite_count").
		Joins("LEFT JOIN favorites ON favorites.truck_id = food_trucks.id").
		Group("food_trucks.id").
		Order("favorite_count DESC").
		Order("food_trucks.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var counts []truckFavoriteCount
	if err := query.Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank trucks")
	}

	ids := make([]uuid.UUID, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.TruckID)
	}

	trucks, err := NewTruckRepository(repo.db).FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Truck, len(trucks))
	for _, truck := range trucks {
		byID[truck.ID] = truck
	}

	ranked := make([]*entity.RankedTruck, 0, len(counts))
	for _, c := range counts {
		truck, ok := byID[c.TruckID]
		if !ok {
			continue
		}
		ranked = append(ranked, &entity.RankedTruck{Truck: truck, FavoriteCount: c.FavoriteCount})
	}

	return ranked, nil
}

// FindPushSubscriberIDs returns the users to alert when the truck moves.
func (repo *favoriteRepository) FindPushSubscriberIDs(ctx context.Context, truckID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Joins("JOIN users ON users.id = favorites.user_id").
		Where("favorites.truck_id = ? AND users.push_notifications_enabled = ?", truckID, true).
		Pluck("favorites.user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscribers")
	}

	return ids, nil
}
