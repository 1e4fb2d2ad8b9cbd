package handler

import (
	"net/http"
	"testing"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/geo"
	mockUsecase "trucktrace/internal/mocks/usecase"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTruckHandlerForTest(t *testing.T) (*TruckHandler, *mockUsecase.MockTruckUsecase, *mockUsecase.MockLocationUsecase) {
	truckUC := mockUsecase.NewMockTruckUsecase(t)
	locationUC := mockUsecase.NewMockLocationUsecase(t)

	h := NewTruckHandler(TruckHandlerParams{
		TruckUC:    truckUC,
		LocationUC: locationUC,
		Config:     testConfig(),
		Logger:     discardLogger(),
	})

	return h, truckUC, locationUC
}

func TestTruckHandler_ListTrucks(t *testing.T) {
	h, truckUC, locationUC := newTruckHandlerForTest(t)
	e := newTestEcho()
	e.GET("/api/trucks", h.ListTrucks)

	t.Run("filter mode", func(t *testing.T) {
		truckUC.EXPECT().
			ListTrucks(mock.Anything, entity.TruckFilter{CuisineTypes: []string{"Mexican", "Thai"}, Search: "taco", Limit: 5}).
			Return([]*entity.TruckWithLocation{}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/trucks?cuisine_types=Mexican,%20Thai,&search=taco&limit=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
	})

	t.Run("nearby mode uses default radius", func(t *testing.T) {
		locationUC.EXPECT().
			NearbyTrucks(mock.Anything, geo.Point{Lat: 40.7, Lng: -74}, 5.0).
			Return(&usecase.NearbyOutput{Trucks: []*entity.NearbyTruck{}, SearchCenter: geo.Point{Lat: 40.7, Lng: -74}, RadiusMiles: 5}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/trucks?lat=40.7&lng=-74", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"radius_miles":5`)
	})

	t.Run("nearby radius out of range", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/trucks?lat=40.7&lng=-74&radius=100", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Radius must be between 0.5 and 50 miles", fieldMessages(decode(t, rec))["radius"])
	})

	t.Run("limit must be numeric", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/trucks?limit=many", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldMessages(decode(t, rec)), "limit")
	})
}

func TestTruckHandler_GetTruck(t *testing.T) {
	h, truckUC, _ := newTruckHandlerForTest(t)
	e := newTestEcho()
	viewer := customer()
	e.GET("/api/trucks/:id", h.GetTruck)
	e.GET("/api/viewer/trucks/:id", h.GetTruck, withPrincipal(viewer))

	truckID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/trucks/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Valid truck ID is required", fieldMessages(decode(t, rec))["truck_id"])
	})

	t.Run("anonymous", func(t *testing.T) {
		truckUC.EXPECT().GetTruckDetail(mock.Anything, truckID, (*entity.Principal)(nil)).
			Return(&entity.TruckDetail{Truck: &entity.Truck{ID: truckID}, MenuItems: []*entity.MenuItem{}, FavoriteCount: 3}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/trucks/"+truckID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		data := string(decode(t, rec).Data)
		assert.Contains(t, data, `"favorite_count":3`)
		assert.NotContains(t, data, "is_favorite")
	})

	t.Run("viewer passed through", func(t *testing.T) {
		isFavorite := true
		truckUC.EXPECT().GetTruckDetail(mock.Anything, truckID, viewer).
			Return(&entity.TruckDetail{Truck: &entity.Truck{ID: truckID}, IsFavorite: &isFavorite}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/viewer/trucks/"+truckID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"is_favorite":true`)
	})

	t.Run("not found", func(t *testing.T) {
		missing := uuid.New()
		truckUC.EXPECT().GetTruckDetail(mock.Anything, missing, (*entity.Principal)(nil)).
			Return(nil, errors.WithStack(domainerrors.ErrTruckNotFound)).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/trucks/"+missing.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Food truck not found", decode(t, rec).Message)
	})
}

func TestTruckHandler_QRCode(t *testing.T) {
	h, truckUC, _ := newTruckHandlerForTest(t)
	e := newTestEcho()
	e.GET("/api/trucks/:id/qrcode", h.QRCode)

	truckID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	truckUC.EXPECT().TruckQRCode(mock.Anything, truckID).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/api/trucks/"+truckID.String()+"/qrcode", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestTruckHandler_CreateTruck(t *testing.T) {
	h, truckUC, _ := newTruckHandlerForTest(t)
	e := newTestEcho()
	caller := customer()
	e.POST("/api/trucks", h.CreateTruck, withPrincipal(caller))

	t.Run("validation", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/trucks",
			`{"business_name":"Chef LLC","truck_name":"Taco Wheels","cuisine_types":[],"contact_phone":"call me","logo_url":"nope"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldMessages(decode(t, rec))
		assert.Equal(t, "At least one cuisine type must be selected", fields["cuisine_types"])
		assert.Equal(t, "Valid phone number is required", fields["contact_phone"])
		assert.Equal(t, "Logo URL must be a valid URL", fields["logo_url"])
	})

	t.Run("already has a truck", func(t *testing.T) {
		truckUC.EXPECT().CreateTruck(mock.Anything, caller, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrTruckAlreadyExists)).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/trucks",
			`{"business_name":"Chef LLC","truck_name":"Taco Wheels","cuisine_types":["Mexican"]}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "TRUCK_ALREADY_EXISTS", decode(t, rec).Code)
	})
}

func TestTruckHandler_UpdateTruck(t *testing.T) {
	h, truckUC, _ := newTruckHandlerForTest(t)
	e := newTestEcho()
	caller := owner()
	e.PUT("/api/trucks/:id", h.UpdateTruck, withPrincipal(caller))

	foreign := uuid.New()
	truckUC.EXPECT().
		UpdateTruck(mock.Anything, caller, foreign, mock.MatchedBy(func(in *usecase.UpdateTruckInput) bool {
			return in.TruckName != nil && *in.TruckName == "Renamed" && in.BusinessName == nil
		})).
		Return(nil, errors.WithStack(domainerrors.ErrTruckOwnershipViolation))

	rec := doRequest(e, http.MethodPut, "/api/trucks/"+foreign.String(), `{"truck_name":"Renamed"}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied. You can only update your own truck.", decode(t, rec).Message)
}

func TestTruckHandler_TopTrucks(t *testing.T) {
	h, truckUC, _ := newTruckHandlerForTest(t)
	e := newTestEcho()
	e.GET("/api/trucks/top", h.TopTrucks)

	truckUC.EXPECT().TopTrucks(mock.Anything, 0).Return([]*entity.RankedTruck{
		{Truck: &entity.Truck{ID: uuid.New()}, FavoriteCount: 7},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/trucks/top", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"favorite_count":7`)
}
