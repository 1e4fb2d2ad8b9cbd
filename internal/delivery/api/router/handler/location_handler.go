package handler

import (
	"log/slog"
	"net/http"
	"time"

	"trucktrace/config"
	"trucktrace/internal/delivery/api/response"
	"trucktrace/internal/domain/entity"
	"trucktrace/internal/domain/geo"
	"trucktrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// LocationHandler serves truck positions and the nearby search.
type LocationHandler struct {
	locationUC    usecase.LocationUsecase
	defaultRadius float64
	logger        *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC:    params.LocationUC,
		defaultRadius: params.Config.SearchOrDefault().NearbyDefaultRadius,
		logger:        params.Logger,
	}
}

type nearbyQuery struct {
	Lat    *float64 `query:"lat" validate:"required,min=-90,max=90"`
	Lng    *float64 `query:"lng" validate:"required,min=-180,max=180"`
	Radius float64  `query:"radius" validate:"min=0.5,max=50"`
}

// CreateLocationRequest represents the request body for adding a location
type CreateLocationRequest struct {
	Address        string                `json:"address" validate:"max=255"`
	Latitude       *float64              `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude      *float64              `json:"longitude" validate:"required,min=-180,max=180"`
	ScheduledStart string                `json:"scheduled_start" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ScheduledEnd   string                `json:"scheduled_end" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsCurrent      bool                  `json:"is_current"`
	Status         entity.LocationStatus `json:"status" validate:"omitempty,oneof=open closing_soon closed"`
}

// UpdateLocationRequest is a partial update of a location
type UpdateLocationRequest struct {
	Address        *string                `json:"address" validate:"omitempty,max=255"`
	Latitude       *float64               `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude      *float64               `json:"longitude" validate:"omitempty,min=-180,max=180"`
	ScheduledStart *string                `json:"scheduled_start" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ScheduledEnd   *string                `json:"scheduled_end" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsCurrent      *bool                  `json:"is_current"`
	Status         *entity.LocationStatus `json:"status" validate:"omitempty,oneof=open closing_soon closed"`
}

// parseNearby reads lat, lng and radius from the query string.
func parseNearby(c echo.Context, defaultRadius float64) (geo.Point, float64, error) {
	q := nearbyQuery{Radius: defaultRadius}

	var err error
	if q.Lat, err = queryFloat(c, "lat"); err != nil {
		return geo.Point{}, 0, err
	}
	if q.Lng, err = queryFloat(c, "lng"); err != nil {
		return geo.Point{}, 0, err
	}
	radius, err := queryFloat(c, "radius")
	if err != nil {
		return geo.Point{}, 0, err
	}
	if radius != nil {
		q.Radius = *radius
	}

	if err := c.Validate(&q); err != nil {
		return geo.Point{}, 0, err
	}

	return geo.Point{Lat: *q.Lat, Lng: *q.Lng}, q.Radius, nil
}

// Nearby lists trucks whose current location is inside the radius.
func (h *LocationHandler) Nearby(c echo.Context) error {
	center, radius, err := parseNearby(c, h.defaultRadius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.locationUC.NearbyTrucks(c.Request().Context(), center, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListTruckLocations returns a truck's location history.
func (h *LocationHandler) ListTruckLocations(c echo.Context) error {
	truckID, err := queryUUID(c, "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	includeScheduled, err := queryBool(c, "include_scheduled")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.locationUC.TruckLocations(c.Request().Context(), truckID, includeScheduled != nil && *includeScheduled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// CurrentLocation returns the truck's current location or null.
func (h *LocationHandler) CurrentLocation(c echo.Context) error {
	truckID, err := queryUUID(c, "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.locationUC.CurrentLocation(c.Request().Context(), truckID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// CreateLocation adds a location to the caller's truck.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.AddLocationInput{
		Address:        req.Address,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		ScheduledStart: parseTimestamp(req.ScheduledStart),
		ScheduledEnd:   parseTimestamp(req.ScheduledEnd),
		IsCurrent:      req.IsCurrent,
		Status:         req.Status,
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), principal, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// UpdateLocation applies a partial update to one of the caller's locations.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	locationID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateLocationInput{
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsCurrent: req.IsCurrent,
		Status:    req.Status,
	}
	if req.ScheduledStart != nil {
		input.ScheduledStart = parseTimestamp(*req.ScheduledStart)
	}
	if req.ScheduledEnd != nil {
		input.ScheduledEnd = parseTimestamp(*req.ScheduledEnd)
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), principal, locationID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// DeleteLocation removes one of the caller's locations.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	locationID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), principal, locationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Location deleted successfully")
}

// parseTimestamp expects a value already checked by the datetime tag.
func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}

	return &t
}
