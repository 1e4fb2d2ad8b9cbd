package impl

import (
	"context"
	"log/slog"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/geo"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/domain/service"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	txManager    repository.TransactionManager
	truckRepo    repository.TruckRepository
	locationRepo repository.LocationRepository
	favoriteRepo repository.FavoriteRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TruckRepo    repository.TruckRepository
	LocationRepo repository.LocationRepository
	FavoriteRepo repository.FavoriteRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		truckRepo:    params.TruckRepo,
		locationRepo: params.LocationRepo,
		favoriteRepo: params.FavoriteRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NearbyTrucks finds trucks whose current location is within radiusMiles of center.
func (s *locationService) NearbyTrucks(ctx context.Context, center geo.Point, radiusMiles float64) (*usecase.NearbyOutput, error) {
	trucks, err := s.locationRepo.FindNearby(ctx, center, radiusMiles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby trucks")
	}
	if trucks == nil {
		trucks = []*entity.NearbyTruck{}
	}

	return &usecase.NearbyOutput{
		Trucks:       trucks,
		SearchCenter: center,
		RadiusMiles:  radiusMiles,
		Count:        len(trucks),
	}, nil
}

// TruckLocations lists a truck's locations, newest first.
func (s *locationService) TruckLocations(ctx context.Context, truckID uuid.UUID, includeScheduled bool) (*usecase.TruckLocationsOutput, error) {
	truck, err := findTruck(ctx, s.truckRepo, truckID)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.FindByTruck(ctx, truckID, includeScheduled)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find truck locations")
	}

	return &usecase.TruckLocationsOutput{Truck: summarize(truck), Locations: locations}, nil
}

// CurrentLocation returns the truck's current location, or nil when it has none.
func (s *locationService) CurrentLocation(ctx context.Context, truckID uuid.UUID) (*usecase.CurrentLocationOutput, error) {
	truck, err := findTruck(ctx, s.truckRepo, truckID)
	if err != nil {
		return nil, err
	}

	current, err := findCurrentLocation(ctx, s.locationRepo, truckID)
	if err != nil {
		return nil, err
	}

	return &usecase.CurrentLocationOutput{Truck: summarize(truck), CurrentLocation: current}, nil
}

// CreateLocation adds a location to the caller's truck.
func (s *locationService) CreateLocation(ctx context.Context, principal *entity.Principal, input *usecase.AddLocationInput) (*entity.Location, error) {
	if !principal.IsOwner() {
		return nil, errors.WithStack(domainerrors.ErrOwnerRequired)
	}

	status := input.Status
	if status == "" {
		status = entity.LocationStatusOpen
	}

	location := &entity.Location{
		ID:             uuid.New(),
		TruckID:        principal.Truck.ID,
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		ScheduledStart: input.ScheduledStart,
		ScheduledEnd:   input.ScheduledEnd,
		IsCurrent:      input.IsCurrent,
		Status:         status,
	}
	if err := validateSchedule(location); err != nil {
		return nil, err
	}

	var err error
	if location.IsCurrent {
		err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			locationRepo := repoFactory.NewLocationRepository()
			if err := locationRepo.ClearCurrent(ctx, location.TruckID, location.ID); err != nil {
				return errors.Wrap(err, "failed to clear current location")
			}

			return locationRepo.Create(ctx, location)
		})
	} else {
		err = s.locationRepo.Create(ctx, location)
	}
	if err != nil {
		return nil, s.mapWriteError(ctx, err, location.TruckID)
	}

	if location.IsCurrent && location.Status == entity.LocationStatusOpen {
		s.publishArrival(ctx, principal.Truck, location)
	}

	return location, nil
}

// UpdateLocation applies a partial update to a location of the caller's truck.
func (s *locationService) UpdateLocation(ctx context.Context, principal *entity.Principal, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	location, err := s.findOwnedLocation(ctx, principal, locationID)
	if err != nil {
		return nil, err
	}

	wasOpenCurrent := location.IsCurrent && location.Status == entity.LocationStatusOpen
	applyLocationUpdates(location, input)
	if err := validateSchedule(location); err != nil {
		return nil, err
	}

	if location.IsCurrent {
		err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			locationRepo := repoFactory.NewLocationRepository()
			if err := locationRepo.ClearCurrent(ctx, location.TruckID, location.ID); err != nil {
				return errors.Wrap(err, "failed to clear current location")
			}

			return locationRepo.Update(ctx, location)
		})
	} else {
		err = s.locationRepo.Update(ctx, location)
	}
	if err != nil {
		return nil, s.mapWriteError(ctx, err, location.TruckID)
	}

	if !wasOpenCurrent && location.IsCurrent && location.Status == entity.LocationStatusOpen {
		s.publishArrival(ctx, principal.Truck, location)
	}

	return location, nil
}

// DeleteLocation removes a location of the caller's truck.
func (s *locationService) DeleteLocation(ctx context.Context, principal *entity.Principal, locationID uuid.UUID) error {
	location, err := s.findOwnedLocation(ctx, principal, locationID)
	if err != nil {
		return err
	}

	if err := s.locationRepo.Delete(ctx, location.ID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return errors.WithStack(domainerrors.ErrLocationNotFound)
		}

		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

func (s *locationService) findOwnedLocation(ctx context.Context, principal *entity.Principal, locationID uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.WithStack(domainerrors.ErrLocationNotFound)
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	if !principal.OwnsTruck(location.TruckID) {
		s.log(ctx).Warn("Location ownership violation",
			slog.Any("locationID", location.ID),
			slog.Any("truckID", location.TruckID),
		)

		return nil, errors.WithStack(domainerrors.ErrLocationOwnershipViolation)
	}

	return location, nil
}

func (s *locationService) mapWriteError(ctx context.Context, err error, truckID uuid.UUID) error {
	switch {
	case errors.Is(err, repository.ErrCurrentLocationConflict):
		s.log(ctx).Warn("Concurrent current location write rejected", slog.Any("truckID", truckID))

		return errors.WithStack(domainerrors.ErrCurrentLocationConflict)
	case errors.Is(err, repository.ErrLocationNotFound):
		return errors.WithStack(domainerrors.ErrLocationNotFound)
	case errors.Is(err, repository.ErrTruckNotFound):
		return errors.WithStack(domainerrors.ErrTruckNotFound)
	default:
		return errors.Wrap(err, "failed to save location")
	}
}

// publishArrival notifies favoriters that the truck opened at a new spot.
// Failures are logged and never surface to the caller.
func (s *locationService) publishArrival(ctx context.Context, truck *entity.Truck, location *entity.Location) {
	logger := s.log(ctx)

	subscriberIDs, err := s.favoriteRepo.FindPushSubscriberIDs(ctx, truck.ID)
	if err != nil {
		logger.Error("Failed to load push subscribers", slog.Any("truckID", truck.ID), slog.Any("error", err))

		return
	}
	if len(subscriberIDs) == 0 {
		logger.Debug("No push subscribers for truck", slog.Any("truckID", truck.ID))

		return
	}

	ids := make([]string, 0, len(subscriberIDs))
	for _, id := range subscriberIDs {
		ids = append(ids, id.String())
	}

	event := &service.TruckLocationEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventID:       uuid.New().String(),
		TruckID:       truck.ID.String(),
		TruckName:     truck.TruckName,
		LocationID:    location.ID.String(),
		Address:       location.Address,
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
		SubscriberIDs: ids,
	}

	if err := s.publisher.PublishTruckLocationEvent(ctx, event); err != nil {
		logger.Error("Failed to publish truck location event",
			slog.String("event_id", event.EventID),
			slog.Any("truckID", truck.ID),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("Truck location event published",
		slog.String("event_id", event.EventID),
		slog.Int("subscriber_count", len(ids)),
	)
}

func applyLocationUpdates(location *entity.Location, input *usecase.UpdateLocationInput) {
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.Latitude != nil {
		location.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		location.Longitude = *input.Longitude
	}
	if input.ScheduledStart != nil {
		location.ScheduledStart = input.ScheduledStart
	}
	if input.ScheduledEnd != nil {
		location.ScheduledEnd = input.ScheduledEnd
	}
	if input.IsCurrent != nil {
		location.IsCurrent = *input.IsCurrent
	}
	if input.Status != nil {
		location.Status = *input.Status
	}
}

func validateSchedule(location *entity.Location) error {
	if location.ScheduledStart == nil || location.ScheduledEnd == nil {
		return nil
	}
	if !location.ScheduledEnd.After(*location.ScheduledStart) {
		return errors.WithStack(domainerrors.ErrInvalidSchedule)
	}

	return nil
}

func summarize(truck *entity.Truck) *usecase.TruckSummary {
	return &usecase.TruckSummary{
		ID:           truck.ID,
		TruckName:    truck.TruckName,
		BusinessName: truck.BusinessName,
	}
}
