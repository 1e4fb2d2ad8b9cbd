package handler

import (
	"net/http"
	"testing"
	"time"

	"trucktrace/config"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/geo"
	mockUsecase "trucktrace/internal/mocks/usecase"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationHandlerForTest(t *testing.T) (*LocationHandler, *mockUsecase.MockLocationUsecase) {
	uc := mockUsecase.NewMockLocationUsecase(t)

	return NewLocationHandler(LocationHandlerParams{LocationUC: uc, Config: testConfig(), Logger: discardLogger()}), uc
}

func TestLocationHandler_Nearby(t *testing.T) {
	h, uc := newLocationHandlerForTest(t)
	e := newTestEcho()
	e.GET("/api/locations/nearby", h.Nearby)

	t.Run("requires coordinates", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/locations/nearby", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "Validation errors", env.Message)
		fields := fieldMessages(env)
		assert.Equal(t, "Valid latitude is required (-90 to 90)", fields["lat"])
		assert.Equal(t, "Valid longitude is required (-180 to 180)", fields["lng"])
	})

	t.Run("rejects out of range latitude", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/locations/nearby?lat=91&lng=0", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldMessages(decode(t, rec)), "lat")
	})

	t.Run("rejects non numeric longitude", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/locations/nearby?lat=10&lng=east", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldMessages(decode(t, rec)), "lng")
	})

	t.Run("searches with explicit radius", func(t *testing.T) {
		center := geo.Point{Lat: 40.758, Lng: -73.9855}
		uc.EXPECT().NearbyTrucks(mock.Anything, center, 2.5).
			Return(&usecase.NearbyOutput{Trucks: []*entity.NearbyTruck{}, SearchCenter: center, RadiusMiles: 2.5}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/locations/nearby?lat=40.758&lng=-73.9855&radius=2.5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"trucks":[],"search_center":{"latitude":40.758,"longitude":-73.9855},"radius_miles":2.5,"count":0}`,
			string(decode(t, rec).Data))
	})
}

func TestLocationHandler_NearbyWithoutSearchConfig(t *testing.T) {
	uc := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: uc, Config: &config.Config{}, Logger: discardLogger()})
	e := newTestEcho()
	e.GET("/api/locations/nearby", h.Nearby)

	center := geo.Point{Lat: 40, Lng: -74}
	uc.EXPECT().NearbyTrucks(mock.Anything, center, 5.0).
		Return(&usecase.NearbyOutput{Trucks: []*entity.NearbyTruck{}, SearchCenter: center, RadiusMiles: 5}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/locations/nearby?lat=40&lng=-74", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_ListAndCurrent(t *testing.T) {
	h, uc := newLocationHandlerForTest(t)
	e := newTestEcho()
	e.GET("/api/locations", h.ListTruckLocations)
	e.GET("/api/locations/current", h.CurrentLocation)

	truckID := uuid.New()

	t.Run("truck id required", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/locations", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Valid truck ID is required", fieldMessages(decode(t, rec))["truck_id"])
	})

	t.Run("include scheduled", func(t *testing.T) {
		uc.EXPECT().TruckLocations(mock.Anything, truckID, true).
			Return(&usecase.TruckLocationsOutput{Truck: &usecase.TruckSummary{ID: truckID}, Locations: []*entity.Location{}}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/locations?truck_id="+truckID.String()+"&include_scheduled=true", "")

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("current is null when missing", func(t *testing.T) {
		uc.EXPECT().CurrentLocation(mock.Anything, truckID).
			Return(&usecase.CurrentLocationOutput{Truck: &usecase.TruckSummary{ID: truckID}}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/locations/current?truck_id="+truckID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"current_location":null`)
	})
}

func TestLocationHandler_CreateLocation(t *testing.T) {
	h, uc := newLocationHandlerForTest(t)
	e := newTestEcho()
	caller := owner()
	e.POST("/api/locations", h.CreateLocation, withPrincipal(caller))

	t.Run("parses schedule", func(t *testing.T) {
		start := time.Date(2026, 5, 1, 11, 0, 0, 0, time.UTC)
		end := start.Add(3 * time.Hour)

		uc.EXPECT().
			CreateLocation(mock.Anything, caller, mock.MatchedBy(func(in *usecase.AddLocationInput) bool {
				return in.ScheduledStart != nil && in.ScheduledStart.Equal(start) &&
					in.ScheduledEnd != nil && in.ScheduledEnd.Equal(end) &&
					in.IsCurrent && in.Status == entity.LocationStatusOpen && in.Latitude == 40.7
			})).
			Return(&entity.Location{ID: uuid.New(), TruckID: caller.Truck.ID, IsCurrent: true, Status: entity.LocationStatusOpen}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/locations",
			`{"latitude":40.7,"longitude":-74.0,"scheduled_start":"2026-05-01T11:00:00Z","scheduled_end":"2026-05-01T14:00:00Z","is_current":true,"status":"open"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Location created successfully", decode(t, rec).Message)
	})

	t.Run("validation", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/locations",
			`{"latitude":95,"scheduled_start":"tomorrow","status":"parked"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldMessages(decode(t, rec))
		assert.Equal(t, "Valid latitude is required (-90 to 90)", fields["latitude"])
		assert.Equal(t, "Valid longitude is required (-180 to 180)", fields["longitude"])
		assert.Equal(t, "Valid start date is required", fields["scheduled_start"])
		assert.Equal(t, "Status must be one of: open, closing_soon, closed", fields["status"])
	})

	t.Run("concurrent current write", func(t *testing.T) {
		uc.EXPECT().CreateLocation(mock.Anything, caller, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrCurrentLocationConflict)).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/locations", `{"latitude":1,"longitude":1,"is_current":true}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "CURRENT_LOCATION_CONFLICT", decode(t, rec).Code)
	})
}

func TestLocationHandler_UpdateAndDelete(t *testing.T) {
	h, uc := newLocationHandlerForTest(t)
	e := newTestEcho()
	caller := owner()
	e.PUT("/api/locations/:id", h.UpdateLocation, withPrincipal(caller))
	e.DELETE("/api/locations/:id", h.DeleteLocation, withPrincipal(caller))

	locationID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		uc.EXPECT().
			UpdateLocation(mock.Anything, caller, locationID, mock.MatchedBy(func(in *usecase.UpdateLocationInput) bool {
				return in.Status != nil && *in.Status == entity.LocationStatusClosingSoon &&
					in.Latitude == nil && in.ScheduledStart == nil
			})).
			Return(&entity.Location{ID: locationID, Status: entity.LocationStatusClosingSoon}, nil).
			Once()

		rec := doRequest(e, http.MethodPut, "/api/locations/"+locationID.String(), `{"status":"closing_soon"}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete foreign", func(t *testing.T) {
		uc.EXPECT().DeleteLocation(mock.Anything, caller, locationID).
			Return(errors.WithStack(domainerrors.ErrLocationOwnershipViolation)).
			Once()

		rec := doRequest(e, http.MethodDelete, "/api/locations/"+locationID.String(), "")

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, "/api/locations/42", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Valid ID is required", fieldMessages(decode(t, rec))["id"])
	})
}
