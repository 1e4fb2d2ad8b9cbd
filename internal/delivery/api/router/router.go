// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"trucktrace/config"
	"trucktrace/internal/delivery/api/middleware"
	"trucktrace/internal/delivery/api/router/handler"
	domainerrors "trucktrace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	TruckHandler    *handler.TruckHandler
	MenuHandler     *handler.MenuHandler
	LocationHandler *handler.LocationHandler
	FavoriteHandler *handler.FavoriteHandler
	ProfileHandler  *handler.ProfileHandler
	DeviceHandler   *handler.DeviceHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	truckHandler    *handler.TruckHandler
	menuHandler     *handler.MenuHandler
	locationHandler *handler.LocationHandler
	favoriteHandler *handler.FavoriteHandler
	profileHandler  *handler.ProfileHandler
	deviceHandler   *handler.DeviceHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		truckHandler:    params.TruckHandler,
		menuHandler:     params.MenuHandler,
		locationHandler: params.LocationHandler,
		favoriteHandler: params.FavoriteHandler,
		profileHandler:  params.ProfileHandler,
		deviceHandler:   params.DeviceHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	authenticate := r.authMiddleware.Authenticate
	optional := r.authMiddleware.OptionalAuth
	owner := r.authMiddleware.RequireOwner

	api := e.Group("/api")
	if limiter := r.rateLimiter(); limiter != nil {
		api.Use(limiter)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register/customer", r.authHandler.RegisterCustomer)
		authGroup.POST("/register/owner", r.authHandler.RegisterOwner)
		authGroup.POST("/login/customer", r.authHandler.LoginCustomer)
		authGroup.POST("/login/owner", r.authHandler.LoginOwner)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	trucksGroup := api.Group("/trucks")
	{
		trucksGroup.GET("", r.truckHandler.ListTrucks, optional)
		trucksGroup.GET("/top", r.truckHandler.TopTrucks)
		// A deleted truck demotes its owner, so /my reports 404 rather than 403.
		trucksGroup.GET("/my", r.truckHandler.MyTruck, authenticate)
		trucksGroup.GET("/:id", r.truckHandler.GetTruck, optional)
		trucksGroup.GET("/:id/qrcode", r.truckHandler.QRCode)
		trucksGroup.GET("/:id/menu", r.menuHandler.GetMenu)
		trucksGroup.GET("/:id/menu/categories", r.menuHandler.Categories)
		trucksGroup.POST("", r.truckHandler.CreateTruck, authenticate)
		trucksGroup.PUT("/:id", r.truckHandler.UpdateTruck, authenticate, owner)
		trucksGroup.DELETE("/:id", r.truckHandler.DeleteTruck, authenticate, owner)
	}

	menuGroup := api.Group("/menu", authenticate, owner)
	{
		menuGroup.POST("", r.menuHandler.CreateMenuItem)
		menuGroup.PUT("/:id", r.menuHandler.UpdateMenuItem)
		menuGroup.PATCH("/:id/availability", r.menuHandler.SetAvailability)
		menuGroup.DELETE("/:id", r.menuHandler.DeleteMenuItem)
	}

	locationsGroup := api.Group("/locations")
	{
		locationsGroup.GET("/nearby", r.locationHandler.Nearby)
		locationsGroup.GET("", r.locationHandler.ListTruckLocations)
		locationsGroup.GET("/current", r.locationHandler.CurrentLocation)
		locationsGroup.POST("", r.locationHandler.CreateLocation, authenticate, owner)
		locationsGroup.PUT("/:id", r.locationHandler.UpdateLocation, authenticate, owner)
		locationsGroup.DELETE("/:id", r.locationHandler.DeleteLocation, authenticate, owner)
	}

	favoritesGroup := api.Group("/favorites", authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.GET("/trucks", r.favoriteHandler.FavoriteTrucks)
		favoritesGroup.GET("/check/:truck_id", r.favoriteHandler.CheckFavorite)
		favoritesGroup.POST("", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("", r.favoriteHandler.RemoveFavorite)
		favoritesGroup.DELETE("/:truck_id", r.favoriteHandler.RemoveFavorite)
	}

	usersGroup := api.Group("/users", authenticate)
	{
		usersGroup.GET("/profile", r.profileHandler.GetProfile)
		usersGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		usersGroup.PUT("/password", r.profileHandler.ChangePassword)
	}

	devicesGroup := api.Group("/devices", authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.PUT("/:id/position", r.deviceHandler.UpdatePosition)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)
	}
}

// rateLimiter allows RateLimit.Requests per RateLimit.Window for each client IP.
func (r *router) rateLimiter() echo.MiddlewareFunc {
	cfg := r.config.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.Requests <= 0 || cfg.Window <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		Burst:     cfg.Requests,
		ExpiresIn: max(cfg.Window, 3*time.Minute),
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return errors.Wrap(err, "failed to identify client for rate limiting")
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return errors.WithStack(domainerrors.ErrTooManyRequests)
		},
	})
}
