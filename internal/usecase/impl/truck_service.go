package impl

import (
	"context"
	"log/slog"
	"strings"

	"trucktrace/config"
	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/domain/service"
	"trucktrace/internal/usecase"
	"trucktrace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type truckService struct {
	truckRepo    repository.TruckRepository
	locationRepo repository.LocationRepository
	menuRepo     repository.MenuItemRepository
	favoriteRepo repository.FavoriteRepository
	qrcode       service.QRCodeService
	search       *config.SearchConfig
	logger       *slog.Logger
}

// TruckServiceParams holds dependencies for TruckService, injected by Fx.
type TruckServiceParams struct {
	fx.In

	TruckRepo    repository.TruckRepository
	LocationRepo repository.LocationRepository
	MenuRepo     repository.MenuItemRepository
	FavoriteRepo repository.FavoriteRepository
	QRCode       service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTruckService creates a new truck service instance
func NewTruckService(params TruckServiceParams) usecase.TruckUsecase {
	return &truckService{
		truckRepo:    params.TruckRepo,
		locationRepo: params.LocationRepo,
		menuRepo:     params.MenuRepo,
		favoriteRepo: params.FavoriteRepo,
		qrcode:       params.QRCode,
		search:       params.Config.SearchOrDefault(),
		logger:       params.Logger,
	}
}

func (s *truckService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListTrucks searches trucks and attaches each one's current location.
func (s *truckService) ListTrucks(ctx context.Context, filter entity.TruckFilter) ([]*entity.TruckWithLocation, error) {
	filter.CuisineTypes = util.NormalizeTags(filter.CuisineTypes)
	filter.Search = strings.TrimSpace(filter.Search)

	trucks, err := s.truckRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search trucks")
	}

	ids := make([]uuid.UUID, 0, len(trucks))
	for _, truck := range trucks {
		ids = append(ids, truck.ID)
	}

	current, err := s.locationRepo.FindCurrentByTrucks(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find current locations")
	}

	result := make([]*entity.TruckWithLocation, 0, len(trucks))
	for _, truck := range trucks {
		result = append(result, &entity.TruckWithLocation{Truck: truck, CurrentLocation: current[truck.ID]})
	}

	return result, nil
}

// TopTrucks ranks trucks by favorite count.
func (s *truckService) TopTrucks(ctx context.Context, limit int) ([]*entity.RankedTruck, error) {
	if limit <= 0 {
		limit = s.search.TopDefaultLimit
	}
	if limit > s.search.TopMaxLimit {
		limit = s.search.TopMaxLimit
	}

	trucks, err := s.favoriteRepo.FindTopTrucks(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find top trucks")
	}

	return trucks, nil
}

// MyTruck returns the owner's truck with every location and menu item.
func (s *truckService) MyTruck(ctx context.Context, principal *entity.Principal) (*entity.TruckDetail, error) {
	if !principal.IsOwner() {
		return nil, errors.WithStack(domainerrors.ErrOwnerTruckNotFound)
	}

	truck, err := s.truckRepo.FindByID(ctx, principal.Truck.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTruckNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOwnerTruckNotFound)
		}

		return nil, errors.Wrap(err, "failed to find owner truck")
	}

	detail, err := s.buildDetail(ctx, truck, entity.MenuFilter{})
	if err != nil {
		return nil, err
	}

	detail.Locations, err = s.locationRepo.FindByTruck(ctx, truck.ID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find truck locations")
	}

	return detail, nil
}

// GetTruckDetail returns the public profile with available menu items.
func (s *truckService) GetTruckDetail(ctx context.Context, truckID uuid.UUID, viewer *entity.Principal) (*entity.TruckDetail, error) {
	truck, err := s.findTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}

	available := true
	detail, err := s.buildDetail(ctx, truck, entity.MenuFilter{IsAvailable: &available})
	if err != nil {
		return nil, err
	}

	if viewer != nil && viewer.User != nil {
		isFavorite, err := s.favoriteRepo.Exists(ctx, viewer.User.ID, truck.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite")
		}
		detail.IsFavorite = &isFavorite
	}

	return detail, nil
}

func (s *truckService) buildDetail(ctx context.Context, truck *entity.Truck, menuFilter entity.MenuFilter) (*entity.TruckDetail, error) {
	current, err := findCurrentLocation(ctx, s.locationRepo, truck.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.menuRepo.FindByTruck(ctx, truck.ID, menuFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find menu items")
	}

	count, err := s.favoriteRepo.CountByTruck(ctx, truck.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count favorites")
	}

	return &entity.TruckDetail{
		Truck:           truck,
		CurrentLocation: current,
		MenuItems:       items,
		FavoriteCount:   count,
	}, nil
}

// TruckQRCode renders a QR code linking to the truck's profile.
func (s *truckService) TruckQRCode(ctx context.Context, truckID uuid.UUID) ([]byte, error) {
	if _, err := s.findTruck(ctx, truckID); err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateTruckQR(truckID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate truck QR code")
	}

	return png, nil
}

// CreateTruck registers a truck for a user that has none yet.
func (s *truckService) CreateTruck(ctx context.Context, principal *entity.Principal, input *usecase.CreateTruckInput) (*entity.Truck, error) {
	if principal.IsOwner() {
		return nil, errors.WithStack(domainerrors.ErrTruckAlreadyExists)
	}

	truck := newTruckEntity(principal.User.ID, input)
	if err := s.truckRepo.Create(ctx, truck); err != nil {
		return nil, mapTruckCreateError(err)
	}

	s.log(ctx).Info("Truck created", slog.Any("truckID", truck.ID), slog.Any("ownerID", truck.OwnerID))

	return truck, nil
}

// UpdateTruck applies a partial update to the caller's own truck.
func (s *truckService) UpdateTruck(ctx context.Context, principal *entity.Principal, truckID uuid.UUID, input *usecase.UpdateTruckInput) (*entity.Truck, error) {
	truck, err := s.findTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}
	if !principal.OwnsTruck(truck.ID) {
		return nil, errors.WithStack(domainerrors.ErrTruckOwnershipViolation)
	}

	applyTruckUpdates(truck, input)

	if err := s.truckRepo.Update(ctx, truck); err != nil {
		if errors.Is(err, repository.ErrTruckNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTruckNotFound)
		}

		return nil, errors.Wrap(err, "failed to update truck")
	}

	return truck, nil
}

// DeleteTruck removes the caller's truck with its locations, menu and favorites.
func (s *truckService) DeleteTruck(ctx context.Context, principal *entity.Principal, truckID uuid.UUID) error {
	truck, err := s.findTruck(ctx, truckID)
	if err != nil {
		return err
	}
	if !principal.OwnsTruck(truck.ID) {
		return errors.WithStack(domainerrors.ErrTruckDeleteOwnershipViolation)
	}

	if err := s.truckRepo.Delete(ctx, truck.ID); err != nil {
		if errors.Is(err, repository.ErrTruckNotFound) {
			return errors.WithStack(domainerrors.ErrTruckNotFound)
		}

		return errors.Wrap(err, "failed to delete truck")
	}

	s.log(ctx).Info("Truck deleted", slog.Any("truckID", truck.ID))

	return nil
}

func (s *truckService) findTruck(ctx context.Context, truckID uuid.UUID) (*entity.Truck, error) {
	return findTruck(ctx, s.truckRepo, truckID)
}

func findTruck(ctx context.Context, truckRepo repository.TruckRepository, truckID uuid.UUID) (*entity.Truck, error) {
	truck, err := truckRepo.FindByID(ctx, truckID)
	if err != nil {
		if errors.Is(err, repository.ErrTruckNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTruckNotFound)
		}

		return nil, errors.Wrap(err, "failed to find truck")
	}

	return truck, nil
}

// findCurrentLocation returns nil when the truck has no current location.
func findCurrentLocation(ctx context.Context, locationRepo repository.LocationRepository, truckID uuid.UUID) (*entity.Location, error) {
	location, err := locationRepo.FindCurrentByTruck(ctx, truckID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find current location")
	}

	return location, nil
}

func newTruckEntity(ownerID uuid.UUID, input *usecase.CreateTruckInput) *entity.Truck {
	socialLinks := input.SocialLinks
	if socialLinks == nil {
		socialLinks = map[string]string{}
	}

	return &entity.Truck{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		BusinessName:  strings.TrimSpace(input.BusinessName),
		TruckName:     strings.TrimSpace(input.TruckName),
		CuisineTypes:  nonNilTags(input.CuisineTypes),
		Description:   input.Description,
		LogoURL:       input.LogoURL,
		CoverPhotoURL: input.CoverPhotoURL,
		ContactPhone:  input.ContactPhone,
		SocialLinks:   socialLinks,
	}
}

func applyTruckUpdates(truck *entity.Truck, input *usecase.UpdateTruckInput) {
	if input.BusinessName != nil {
		truck.BusinessName = strings.TrimSpace(*input.BusinessName)
	}
	if input.TruckName != nil {
		truck.TruckName = strings.TrimSpace(*input.TruckName)
	}
	if input.CuisineTypes != nil {
		truck.CuisineTypes = nonNilTags(input.CuisineTypes)
	}
	if input.Description != nil {
		truck.Description = *input.Description
	}
	if input.LogoURL != nil {
		truck.LogoURL = *input.LogoURL
	}
	if input.CoverPhotoURL != nil {
		truck.CoverPhotoURL = *input.CoverPhotoURL
	}
	if input.ContactPhone != nil {
		truck.ContactPhone = *input.ContactPhone
	}
	if input.SocialLinks != nil {
		truck.SocialLinks = input.SocialLinks
	}
}

func mapTruckCreateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTruckAlreadyExists):
		return errors.WithStack(domainerrors.ErrTruckAlreadyExists)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.WithStack(domainerrors.ErrUserNotFound)
	default:
		return errors.Wrap(err, "failed to create truck")
	}
}
