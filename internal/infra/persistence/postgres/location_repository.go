package postgres

import (
	"context"
	"slices"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/geo"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Create persists a new location. A second current row for the truck is rejected by the partial unique index.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	if location.Status == "" {
		location.Status = entity.LocationStatusOpen
	}
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCurrentLocationConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTruckNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a location by primary key.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// Update overwrites every mutable column of the location.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	result := repo.db.WithContext(ctx).
		Model(locationM).
		Select("address", "latitude", "longitude", "scheduled_start", "scheduled_end",
			"is_current", "status", "updated_at").
		Updates(locationM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrCurrentLocationConflict
		}

		return errors.Wrap(result.Error, "failed to update location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Delete removes a location by its ID.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// ClearCurrent unsets is_current on the truck's other locations.
func (repo *locationRepository) ClearCurrent(ctx context.Context, truckID, exceptID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("truck_id = ? AND is_current = ? AND id <> ?", truckID, true, exceptID).
		Update("is_current", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear current location")
	}

	return nil
}

// FindCurrentByTruck returns the truck's current location.
func (repo *locationRepository) FindCurrentByTruck(ctx context.Context, truckID uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("truck_id = ? AND is_current = ?", truckID, true).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find current location")
	}

	return toLocationDomain(&locationM), nil
}

// FindCurrentByTrucks returns the current location of each truck that has one, keyed by truck ID.
func (repo *locationRepository) FindCurrentByTrucks(ctx context.Context, truckIDs []uuid.UUID) (map[uuid.UUID]*entity.Location, error) {
	current := make(map[uuid.UUID]*entity.Location, len(truckIDs))
	if len(truckIDs) == 0 {
		return current, nil
	}

	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("truck_id IN ? AND is_current = ?", truckIDs, true).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find current locations")
	}

	for _, locationM := range locationModels {
		current[locationM.TruckID] = toLocationDomain(locationM)
	}

	return current, nil
}

// FindByTruck lists the truck's locations, newest first.
func (repo *locationRepository) FindByTruck(ctx context.Context, truckID uuid.UUID, includeScheduled bool) ([]*entity.Location, error) {
	query := repo.db.WithContext(ctx).Where("truck_id = ?", truckID)
	if !includeScheduled {
		query = query.Where("is_current = ?", true)
	}

	var locationModels []*model.LocationModel
	if err := query.Order("created_at DESC").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find truck locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindNearby narrows current locations with a bounding box in SQL, then applies
// the exact Haversine radius and sorts by distance.
func (repo *locationRepository) FindNearby(ctx context.Context, center geo.Point, radiusMiles float64) ([]*entity.NearbyTruck, error) {
	if radiusMiles <= 0 {
		return []*entity.NearbyTruck{}, nil
	}

	bound := geo.BoundAround(center, radiusMiles)

	query := repo.db.WithContext(ctx).
		Preload("Truck.Cuisines", orderedCuisines).
		Where("is_current = ?", true).
		Where("latitude BETWEEN ? AND ?", bound.MinLat, bound.MaxLat)
	if bound.CrossesAntimeridian() {
		query = query.Where("(longitude >= ? OR longitude <= ?)", bound.MinLng, bound.MaxLng)
	} else {
		query = query.Where("longitude BETWEEN ? AND ?", bound.MinLng, bound.MaxLng)
	}

	var locationModels []*model.LocationModel
	if err := query.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby locations")
	}

	nearby := make([]*entity.NearbyTruck, 0, len(locationModels))
	for _, locationM := range locationModels {
		if locationM.Truck == nil {
			continue
		}

		distance := geo.DistanceMiles(center, geo.Point{Lat: locationM.Latitude, Lng: locationM.Longitude})
		if distance > radiusMiles {
			continue
		}

		nearby = append(nearby, &entity.NearbyTruck{
			Truck:           toTruckDomain(locationM.Truck),
			CurrentLocation: toLocationDomain(locationM),
			DistanceMiles:   distance,
		})
	}

	slices.SortStableFunc(nearby, func(a, b *entity.NearbyTruck) int {
		switch {
		case a.DistanceMiles < b.DistanceMiles:
			return -1
		case a.DistanceMiles > b.DistanceMiles:
			return 1
		default:
			return 0
		}
	})

	return nearby, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:             data.ID,
		TruckID:        data.TruckID,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		ScheduledStart: data.ScheduledStart,
		ScheduledEnd:   data.ScheduledEnd,
		IsCurrent:      data.IsCurrent,
		Status:         entity.LocationStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:             data.ID,
		TruckID:        data.TruckID,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		ScheduledStart: data.ScheduledStart,
		ScheduledEnd:   data.ScheduledEnd,
		IsCurrent:      data.IsCurrent,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
