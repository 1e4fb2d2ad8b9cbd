package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"trucktrace/config"
	"trucktrace/internal/delivery/api/middleware"
	"trucktrace/internal/delivery/api/validator"
	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    json.RawMessage        `json:"data"`
	Errors  []validator.FieldError `json:"errors"`
	Code    string                 `json:"code"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Search: &config.SearchConfig{
			NearbyDefaultRadius:    5,
			FavoritesDefaultRadius: 50,
			TopDefaultLimit:        10,
			TopMaxLimit:            50,
		},
	}
	cfg.Env.Env = "test"

	return cfg
}

// newTestEcho mirrors the production error handler and validator without the middleware chain.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func withPrincipal(principal *entity.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetPrincipal(c, principal)

			return next(c)
		}
	}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func fieldMessages(env envelope) map[string]string {
	out := make(map[string]string, len(env.Errors))
	for _, f := range env.Errors {
		out[f.Field] = f.Message
	}

	return out
}

func customer() *entity.Principal {
	return entity.NewCustomer(&entity.User{ID: uuid.New(), Username: "hungry", Email: "hungry@example.com"})
}

func owner() *entity.Principal {
	user := &entity.User{ID: uuid.New(), Username: "chef", Email: "chef@example.com"}
	truck := &entity.Truck{ID: uuid.New(), OwnerID: user.ID, TruckName: "Taco Wheels", BusinessName: "Chef LLC"}

	return entity.NewOwner(user, truck)
}
