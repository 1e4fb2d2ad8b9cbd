package handler

import (
	"log/slog"
	"net/http"

	"trucktrace/internal/delivery/api/response"
	"trucktrace/internal/domain/entity"
	"trucktrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves truck menus.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{menuUC: params.MenuUC, logger: params.Logger}
}

// CreateMenuItemRequest is the body of POST /api/menu.
type CreateMenuItemRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"max=1000"`
	Price       *float64 `json:"price" validate:"required,min=0,max=99999999.99"`
	Category    string   `json:"category" validate:"max=100"`
	PhotoURL    string   `json:"photo_url" validate:"omitempty,url,max=500"`
	IsAvailable *bool    `json:"is_available"`
	IsSignature bool     `json:"is_signature"`
	DietaryTags []string `json:"dietary_tags"`
}

// UpdateMenuItemRequest is a partial menu item update.
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price" validate:"omitempty,min=0,max=99999999.99"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	PhotoURL    *string  `json:"photo_url" validate:"omitempty,url,max=500"`
	IsAvailable *bool    `json:"is_available"`
	IsSignature *bool    `json:"is_signature"`
	DietaryTags []string `json:"dietary_tags"`
}

// AvailabilityRequest is the body of PATCH /api/menu/:id/availability.
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// GetMenu lists a truck's menu, filtered or searched.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	truckID, err := pathUUID(c, "id", "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	query := usecase.MenuQuery{
		Filter: entity.MenuFilter{Category: c.QueryParam("category")},
		Search: c.QueryParam("search"),
	}
	if query.Filter.IsAvailable, err = queryBool(c, "is_available"); err != nil {
		return response.HandleAppError(c, err)
	}
	if query.Filter.IsSignature, err = queryBool(c, "is_signature"); err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.menuUC.GetMenu(c.Request().Context(), truckID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Categories lists the distinct categories of a truck's menu.
func (h *MenuHandler) Categories(c echo.Context) error {
	truckID, err := pathUUID(c, "id", "truck_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categories, err := h.menuUC.Categories(c.Request().Context(), truckID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CreateMenuItem adds an item to the caller's truck.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.CreateMenuItem(c.Request().Context(), principal, &usecase.AddMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		PhotoURL:    req.PhotoURL,
		IsAvailable: req.IsAvailable,
		IsSignature: req.IsSignature,
		DietaryTags: req.DietaryTags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// UpdateMenuItem applies a partial update to one of the caller's items.
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.UpdateMenuItem(c.Request().Context(), principal, itemID, &usecase.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		PhotoURL:    req.PhotoURL,
		IsAvailable: req.IsAvailable,
		IsSignature: req.IsSignature,
		DietaryTags: req.DietaryTags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// SetAvailability toggles whether an item can be ordered.
func (h *MenuHandler) SetAvailability(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.SetAvailability(c.Request().Context(), principal, itemID, *req.IsAvailable)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item availability updated")
}

// DeleteMenuItem removes one of the caller's items.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := pathUUID(c, "id", "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.menuUC.DeleteMenuItem(c.Request().Context(), principal, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted successfully")
}
