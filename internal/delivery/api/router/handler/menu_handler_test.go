package handler

import (
	"net/http"
	"testing"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	mockUsecase "trucktrace/internal/mocks/usecase"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMenuHandlerForTest(t *testing.T) (*MenuHandler, *mockUsecase.MockMenuUsecase) {
	uc := mockUsecase.NewMockMenuUsecase(t)

	return NewMenuHandler(MenuHandlerParams{MenuUC: uc, Logger: discardLogger()}), uc
}

func TestMenuHandler_GetMenu(t *testing.T) {
	h, uc := newMenuHandlerForTest(t)
	e := newTestEcho()
	e.GET("/api/trucks/:id/menu", h.GetMenu)
	e.GET("/api/trucks/:id/menu/categories", h.Categories)

	truckID := uuid.New()

	t.Run("filters", func(t *testing.T) {
		available := true
		uc.EXPECT().
			GetMenu(mock.Anything, truckID, usecase.MenuQuery{
				Filter: entity.MenuFilter{Category: "Tacos", IsAvailable: &available},
			}).
			Return([]*entity.MenuItem{{ID: uuid.New(), TruckID: truckID, Name: "Al Pastor", Price: 4.5, IsAvailable: true}}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/trucks/"+truckID.String()+"/menu?category=Tacos&is_available=true", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"name":"Al Pastor"`)
	})

	t.Run("search", func(t *testing.T) {
		uc.EXPECT().GetMenu(mock.Anything, truckID, usecase.MenuQuery{Search: "taco"}).
			Return([]*entity.MenuItem{}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/trucks/"+truckID.String()+"/menu?search=taco", "")

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad boolean", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/trucks/"+truckID.String()+"/menu?is_available=maybe", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "is_available must be a boolean", fieldMessages(decode(t, rec))["is_available"])
	})

	t.Run("unknown truck", func(t *testing.T) {
		uc.EXPECT().Categories(mock.Anything, truckID).
			Return(nil, errors.WithStack(domainerrors.ErrTruckNotFound)).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/trucks/"+truckID.String()+"/menu/categories", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMenuHandler_Manage(t *testing.T) {
	h, uc := newMenuHandlerForTest(t)
	e := newTestEcho()
	caller := owner()
	e.POST("/api/menu", h.CreateMenuItem, withPrincipal(caller))
	e.PATCH("/api/menu/:id/availability", h.SetAvailability, withPrincipal(caller))
	e.DELETE("/api/menu/:id", h.DeleteMenuItem, withPrincipal(caller))

	itemID := uuid.New()

	t.Run("create requires name and price", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/menu", `{"description":"spicy"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldMessages(decode(t, rec))
		assert.Equal(t, "Price is required", fields["price"])
		assert.Contains(t, fields, "name")
	})

	t.Run("create rejects negative price", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/menu", `{"name":"Taco","price":-1}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Price must be a non-negative number", fieldMessages(decode(t, rec))["price"])
	})

	t.Run("create free item", func(t *testing.T) {
		uc.EXPECT().
			CreateMenuItem(mock.Anything, caller, mock.MatchedBy(func(in *usecase.AddMenuItemInput) bool {
				return in.Name == "Salsa" && in.Price == 0 && in.IsAvailable == nil
			})).
			Return(&entity.MenuItem{ID: itemID, Name: "Salsa", IsAvailable: true}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/menu", `{"name":"Salsa","price":0}`)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("availability required", func(t *testing.T) {
		rec := doRequest(e, http.MethodPatch, "/api/menu/"+itemID.String()+"/availability", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldMessages(decode(t, rec)), "is_available")
	})

	t.Run("availability off", func(t *testing.T) {
		uc.EXPECT().SetAvailability(mock.Anything, caller, itemID, false).
			Return(&entity.MenuItem{ID: itemID, IsAvailable: false}, nil).
			Once()

		rec := doRequest(e, http.MethodPatch, "/api/menu/"+itemID.String()+"/availability", `{"is_available":false}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete foreign item", func(t *testing.T) {
		uc.EXPECT().DeleteMenuItem(mock.Anything, caller, itemID).
			Return(errors.WithStack(domainerrors.ErrMenuItemOwnershipViolation)).
			Once()

		rec := doRequest(e, http.MethodDelete, "/api/menu/"+itemID.String(), "")

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
