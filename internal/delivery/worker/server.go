// Package worker serves the Pub/Sub push endpoint of the notifier.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"trucktrace/config"
	"trucktrace/internal/delivery"
	"trucktrace/internal/delivery/api/middleware"
	"trucktrace/internal/delivery/api/response"
	deliverymiddleware "trucktrace/internal/delivery/middleware"
	"trucktrace/internal/delivery/worker/handler"
	"trucktrace/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker's echo instance with the push route mounted.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	// Recover first so panics in later middleware are caught.
	e.Use(echomiddleware.Recover())
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	e.Use(deliverymiddleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, nil, "TruckTrace notifier is running")
	})
	e.POST(cfg.Worker.PushPath, pushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.Info("Starting Worker HTTP server",
		slog.String("hostPort", hostPort),
		slog.String("pushPath", s.cfg.Worker.PushPath),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
