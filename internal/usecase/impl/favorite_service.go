package impl

import (
	"context"
	"log/slog"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/geo"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	truckRepo    repository.TruckRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TruckRepo    repository.TruckRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		truckRepo:    params.TruckRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (s *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddFavorite records the pair once. A repeated add is reported, not duplicated.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, truckID uuid.UUID) (*entity.Favorite, error) {
	if _, err := findTruck(ctx, s.truckRepo, truckID); err != nil {
		return nil, err
	}

	favorite := &entity.Favorite{UserID: userID, TruckID: truckID}
	added, err := s.favoriteRepo.Add(ctx, favorite)
	if err != nil {
		if errors.Is(err, repository.ErrTruckNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTruckNotFound)
		}

		return nil, errors.Wrap(err, "failed to add favorite")
	}
	if !added {
		return nil, errors.WithStack(domainerrors.ErrAlreadyFavorited)
	}

	s.log(ctx).Debug("Favorite added", slog.Any("userID", userID), slog.Any("truckID", truckID))

	return favorite, nil
}

// RemoveFavorite deletes the pair.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, truckID uuid.UUID) error {
	if err := s.favoriteRepo.Remove(ctx, userID, truckID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return errors.WithStack(domainerrors.ErrFavoriteNotFound)
		}

		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// IsFavorite reports whether the user favorited the truck.
func (s *favoriteService) IsFavorite(ctx context.Context, userID, truckID uuid.UUID) (bool, error) {
	exists, err := s.favoriteRepo.Exists(ctx, userID, truckID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return exists, nil
}

// ListFavorites returns the user's favorites, annotated with distances when ref is set.
func (s *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID, ref *usecase.DistanceReference) ([]*entity.FavoriteTruck, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}
	if favorites == nil {
		favorites = []*entity.FavoriteTruck{}
	}

	if ref != nil {
		for _, favorite := range favorites {
			annotateDistance(favorite, ref)
		}
	}

	return favorites, nil
}

// FavoriteTrucks returns the favorited trucks without location data.
func (s *favoriteService) FavoriteTrucks(ctx context.Context, userID uuid.UUID) ([]*entity.Truck, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite trucks")
	}

	trucks := make([]*entity.Truck, 0, len(favorites))
	for _, favorite := range favorites {
		trucks = append(trucks, favorite.Truck)
	}

	return trucks, nil
}

// annotateDistance never filters. A truck without a current location is outside every radius.
func annotateDistance(favorite *entity.FavoriteTruck, ref *usecase.DistanceReference) {
	within := false
	favorite.IsWithinRadius = &within

	if favorite.CurrentLocation == nil {
		favorite.DistanceMiles = nil

		return
	}

	distance := geo.DistanceMiles(ref.Point, geo.Point{
		Lat: favorite.CurrentLocation.Latitude,
		Lng: favorite.CurrentLocation.Longitude,
	})
	within = distance <= ref.RadiusMiles
	favorite.DistanceMiles = &distance
}
