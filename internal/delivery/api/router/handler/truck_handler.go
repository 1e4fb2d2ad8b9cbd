package handler

import (
	"log/slog"
	"net/http"

	"trucktrace/config"
	"trucktrace/internal/delivery/api/response"
	"trucktrace/internal/domain/entity"
	"trucktrace/internal/usecase"
	"trucktrace/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TruckHandlerParams holds dependencies for TruckHandler, injected by Fx.
type TruckHandlerParams struct {
	fx.In

	TruckUC    usecase.TruckUsecase
	LocationUC usecase.LocationUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// TruckHandler serves truck discovery and profile management.
type TruckHandler struct {
	truckUC      usecase.TruckUsecase
	locationUC   usecase.LocationUsecase
	nearbyRadius float64
	logger       *slog.Logger
}

// NewTruckHandler is the constructor for TruckHandler
func NewTruckHandler(params TruckHandlerParams) *TruckHandler {
	return &TruckHandler{
		truckUC:      params.TruckUC,
		locationUC:   params.LocationUC,
		nearbyRadius: params.Config.SearchOrDefault().NearbyDefaultRadius,
		logger:       params.Logger,
	}
}

// TruckProfileRequest carries the fields of a new truck.
type TruckProfileRequest struct {
	BusinessName  string            `json:"business_name" validate:"required,min=2,max=255"`
	TruckName     string            `json:"truck_name" validate:"required,min=2,max=255"`
	CuisineTypes  []string          `json:"cuisine_types" validate:"required,min=1,dive,min=1,max=100"`
	Description   string            `json:"description" validate:"max=1000"`
	LogoURL       string            `json:"logo_url" validate:"omitempty,url,max=500"`
	CoverPhotoURL string            `json:"cover_photo_url" validate:"omitempty,url,max=500"`
	ContactPhone  string            `json:"contact_phone" validate:"omitempty,phone"`
	SocialLinks   map[string]string `json:"social_links"`
}

func (r *TruckProfileRequest) toInput() usecase.CreateTruckInput {
	return usecase.CreateTruckInput{
		BusinessName:  r.BusinessName,
		TruckName:     r.TruckName,
		CuisineTypes:  r.CuisineTypes,
		Description:   r.Description,
		LogoURL:       r.LogoURL,
		CoverPhotoURL: r.CoverPhotoURL,
		ContactPhone:  r.ContactPhone,
		SocialLinks:   r.SocialLinks,
	}
}

// UpdateTruckRequest is a partial truck update.
type UpdateTruckRequest struct {
	BusinessName  *string           `json:"business_name" validate:"omitempty,min=2,max=255"`
	TruckName     *string           `json:"truck_name" validate:"omitempty,min=2,max=255"`
	CuisineTypes  []string          `json:"cuisine_types" validate:"omitempty,min=1,dive,min=1,max=100"`
	Description   *string           `json:"description" validate:"omitempty,max=1000"`
	LogoURL       *string           `json:"logo_url" validate:"omitempty,url,max=500"`
	CoverPhotoURL *string           `json:"cover_photo_url" validate:"omitempty,url,max=500"`
	ContactPhone  *string           `json:"contact_phone" validate:"omitempty,phone"`
	SocialLinks   map[string]string `json:"social_links"`
}

// ListTrucks filters trucks, or searches by radius when lat and lng are given.
func (h *TruckHandler) ListTrucks(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" {
		center, radius, err := parseNearby(c, h.nearbyRadius)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		output, err := h.locationUC.NearbyTrucks(ctx, center, radius)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, output, "")
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	trucks, err := h.truckUC.ListTrucks(ctx, entity.TruckFilter{
		CuisineTypes: util.SplitCSV(c.QueryParam("cuisine_types")),
		Search:       c.QueryParam("search"),
		Limit:        limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trucks, "")
}

// TopTrucks ranks trucks by favorite count.
func (h *TruckHandler) TopTrucks(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	trucks, err := h.truckUC.TopTrucks(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trucks, "")
}

// MyTruck returns the caller's truck with its locations and full menu.
func (h *TruckHandler) MyTruck(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.truckUC.MyTruck(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// GetTruck returns the public profile of a truck.
func (h *TruckHandler) GetTruck(c echo.Context) error {
	truckID, err := pathUUID(c, "id", "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.truckUC.GetTruckDetail(c.Request().Context(), truckID, viewerOf(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// QRCode renders a PNG linking to the truck's public profile.
func (h *TruckHandler) QRCode(c echo.Context) error {
	truckID, err := pathUUID(c, "id", "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.truckUC.TruckQRCode(c.Request().Context(), truckID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateTruck registers a truck for a caller that has none.
func (h *TruckHandler) CreateTruck(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TruckProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := req.toInput()
	truck, err := h.truckUC.CreateTruck(c.Request().Context(), principal, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, truck, "Food truck created successfully")
}

// UpdateTruck applies a partial update to the caller's truck.
func (h *TruckHandler) UpdateTruck(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	truckID, err := pathUUID(c, "id", "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTruckRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	truck, err := h.truckUC.UpdateTruck(c.Request().Context(), principal, truckID, &usecase.UpdateTruckInput{
		BusinessName:  req.BusinessName,
		TruckName:     req.TruckName,
		CuisineTypes:  req.CuisineTypes,
		Description:   req.Description,
		LogoURL:       req.LogoURL,
		CoverPhotoURL: req.CoverPhotoURL,
		ContactPhone:  req.ContactPhone,
		SocialLinks:   req.SocialLinks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, truck, "Food truck updated successfully")
}

// DeleteTruck removes the caller's truck and everything attached to it.
func (h *TruckHandler) DeleteTruck(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	truckID, err := pathUUID(c, "id", "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.truckUC.DeleteTruck(c.Request().Context(), principal, truckID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Food truck deleted successfully")
}
