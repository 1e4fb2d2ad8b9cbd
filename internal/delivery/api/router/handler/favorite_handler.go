package handler

import (
	"log/slog"
	"net/http"

	"trucktrace/config"
	"trucktrace/internal/delivery/api/response"
	"trucktrace/internal/delivery/api/validator"
	"trucktrace/internal/domain/geo"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// FavoriteHandler serves the caller's favorites list.
type FavoriteHandler struct {
	favoriteUC    usecase.FavoriteUsecase
	defaultRadius float64
	logger        *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC:    params.FavoriteUC,
		defaultRadius: params.Config.SearchOrDefault().FavoritesDefaultRadius,
		logger:        params.Logger,
	}
}

// FavoriteRequest names the truck to add or remove.
type FavoriteRequest struct {
	TruckID string `json:"truck_id" validate:"required,uuid"`
}

type distanceQuery struct {
	Lat    *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Lng    *float64 `query:"lng" validate:"omitempty,min=-180,max=180"`
	Radius float64  `query:"radius" validate:"gt=0,max=50"`
}

// FavoriteStatus is the body of GET /api/favorites/check/:truck_id.
type FavoriteStatus struct {
	IsFavorite bool `json:"is_favorite"`
}

// ListFavorites returns favorites, annotated with distance when lat and lng are given.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ref, err := h.parseReference(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), principal.User.ID, ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}

// FavoriteTrucks returns the favorited trucks only.
func (h *FavoriteHandler) FavoriteTrucks(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	trucks, err := h.favoriteUC.FavoriteTrucks(c.Request().Context(), principal.User.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trucks, "")
}

// CheckFavorite reports whether the caller favorited a truck.
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	truckID, err := pathUUID(c, "truck_id", "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	isFavorite, err := h.favoriteUC.IsFavorite(c.Request().Context(), principal.User.ID, truckID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FavoriteStatus{IsFavorite: isFavorite}, "")
}

// AddFavorite adds a truck to the caller's favorites.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), principal.User.ID, uuid.MustParse(req.TruckID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Truck added to favorites")
}

// RemoveFavorite takes the truck from the path, or from the body when the path has none.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var truckID uuid.UUID
	if c.Param("truck_id") != "" {
		if truckID, err = pathUUID(c, "truck_id", "truck_id"); err != nil {
			return response.HandleAppError(c, err)
		}
	} else {
		var req FavoriteRequest
		if err := bindAndValidate(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}
		truckID = uuid.MustParse(req.TruckID)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), principal.User.ID, truckID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Truck removed from favorites")
}

func (h *FavoriteHandler) parseReference(c echo.Context) (*usecase.DistanceReference, error) {
	q := distanceQuery{Radius: h.defaultRadius}

	var err error
	if q.Lat, err = queryFloat(c, "lat"); err != nil {
		return nil, err
	}
	if q.Lng, err = queryFloat(c, "lng"); err != nil {
		return nil, err
	}
	radius, err := queryFloat(c, "radius")
	if err != nil {
		return nil, err
	}
	if radius != nil {
		q.Radius = *radius
	}

	if err := c.Validate(&q); err != nil {
		return nil, err
	}
	switch {
	case q.Lat == nil && q.Lng == nil:
		return nil, nil
	case q.Lat == nil:
		return nil, validator.Invalid("lat")
	case q.Lng == nil:
		return nil, validator.Invalid("lng")
	}

	return &usecase.DistanceReference{
		Point:       geo.Point{Lat: *q.Lat, Lng: *q.Lng},
		RadiusMiles: q.Radius,
	}, nil
}
