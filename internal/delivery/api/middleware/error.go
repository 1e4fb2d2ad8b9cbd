package middleware

import (
	"log/slog"
	"net/http"

	"trucktrace/internal/delivery/api/response"
	deliverycontext "trucktrace/internal/delivery/context"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/infra/persistence/postgres"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if rendered := response.HandleAppError(c, err); rendered == nil {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.renderHTTPError(c, httpErr)

		return
	}

	if postgres.IsUniqueConstraintViolation(err) {
		dup := domainerrors.ErrDuplicateEntry
		_ = response.Error(c, dup.HTTPCode(), dup.ErrorCode(), dup.Message())

		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	internal := domainerrors.ErrInternalError
	_ = response.InternalServerError(c, internal.ErrorCode(), internal.Message())
}

func (m *ErrorMiddleware) renderHTTPError(c echo.Context, httpErr *echo.HTTPError) {
	switch httpErr.Code {
	case http.StatusNotFound:
		notFound := domainerrors.ErrRouteNotFound
		_ = response.NotFound(c, notFound.ErrorCode(), notFound.Message())
	case http.StatusTooManyRequests:
		limited := domainerrors.ErrTooManyRequests
		_ = response.Error(c, limited.HTTPCode(), limited.ErrorCode(), limited.Message())
	default:
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message)
	}
}
