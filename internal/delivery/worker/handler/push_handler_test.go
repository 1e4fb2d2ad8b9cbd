package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trucktrace/config"
	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/constants"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/service"
	mockUsecase "trucktrace/internal/mocks/usecase"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, event any, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/truck-locations"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func validEvent() *service.TruckLocationEvent {
	return &service.TruckLocationEvent{
		EventID:       uuid.NewString(),
		TruckID:       uuid.NewString(),
		TruckName:     "Taco Wheels",
		LocationID:    uuid.NewString(),
		Latitude:      40.7,
		Longitude:     -74,
		SubscriberIDs: []string{uuid.NewString()},
	}
}

func push(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("delivers event", func(t *testing.T) {
		uc := mockUsecase.NewMockAlertUsecase(t)
		h := newPushHandler(uc, nil, discardLogger())
		event := validEvent()

		uc.EXPECT().
			ProcessTruckLocationEvent(mock.Anything, mock.MatchedBy(func(got *service.TruckLocationEvent) bool {
				return got.EventID == event.EventID && got.TruckID == event.TruckID && len(got.SubscriberIDs) == 1
			})).
			Return(&usecase.AlertResult{Recipients: 1, Sent: 1}, nil).
			Once()

		rec := push(h, pushBody(t, event, nil), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sent":1`)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		h := newPushHandler(mockUsecase.NewMockAlertUsecase(t), nil, discardLogger())

		rec := push(h, `{"message":`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_EVENT")
	})

	t.Run("data is not base64", func(t *testing.T) {
		h := newPushHandler(mockUsecase.NewMockAlertUsecase(t), nil, discardLogger())

		rec := push(h, `{"message":{"data":"%%%"}}`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("event without truck", func(t *testing.T) {
		h := newPushHandler(mockUsecase.NewMockAlertUsecase(t), nil, discardLogger())
		event := validEvent()
		event.TruckID = ""

		rec := push(h, pushBody(t, event, nil), nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("retryable failure", func(t *testing.T) {
		uc := mockUsecase.NewMockAlertUsecase(t)
		h := newPushHandler(uc, nil, discardLogger())

		uc.EXPECT().ProcessTruckLocationEvent(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrDeliveryUnavailable, "db down")).
			Once()

		rec := push(h, pushBody(t, validEvent(), nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		uc := mockUsecase.NewMockAlertUsecase(t)
		h := newPushHandler(uc, nil, discardLogger())

		uc.EXPECT().ProcessTruckLocationEvent(mock.Anything, mock.Anything).
			Return(nil, errors.New("bad payload")).
			Once()

		rec := push(h, pushBody(t, validEvent(), nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("verifier rejects", func(t *testing.T) {
		reject := func(context.Context, *http.Request) error { return errors.New("no token") }
		h := newPushHandler(mockUsecase.NewMockAlertUsecase(t), reject, discardLogger())

		rec := push(h, pushBody(t, validEvent(), nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPushHandler_RequestID(t *testing.T) {
	tests := []struct {
		name      string
		attrs     map[string]string
		eventID   string
		header    string
		wantFixed string
	}{
		{name: "from attributes", attrs: map[string]string{constants.AttrRequestID: "attr-id"}, eventID: "event-id", header: "header-id", wantFixed: "attr-id"},
		{name: "from event", eventID: "event-id", header: "header-id", wantFixed: "event-id"},
		{name: "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAlertUsecase(t)
			h := newPushHandler(uc, nil, discardLogger())
			event := validEvent()
			event.RequestID = tt.eventID

			var got string
			uc.EXPECT().ProcessTruckLocationEvent(mock.Anything, mock.Anything).
				Run(func(ctx context.Context, _ *service.TruckLocationEvent) {
					got = deliverycontext.GetRequestIDFromContext(ctx)
				}).
				Return(&usecase.AlertResult{}, nil).
				Once()

			rec := push(h, pushBody(t, event, tt.attrs), nil)
			require.Equal(t, http.StatusOK, rec.Code)

			if tt.wantFixed != "" {
				assert.Equal(t, tt.wantFixed, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPushHandler_Verification(t *testing.T) {
	base := func(provider, env string) *config.Config {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
		cfg.Env.Env = env

		return cfg
	}

	tests := []struct {
		name   string
		cfg    *config.Config
		verify bool
	}{
		{name: "google in production", cfg: base(constants.PubSubProviderGoogle, constants.EnvProduction), verify: true},
		{name: "google in develop", cfg: base(constants.PubSubProviderGoogle, constants.EnvDevelop)},
		{name: "local provider", cfg: base(constants.PubSubProviderLocal, constants.EnvProduction)},
		{name: "no pubsub", cfg: &config.Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPushHandler(PushHandlerParams{Config: tt.cfg, Logger: discardLogger(), AlertUC: mockUsecase.NewMockAlertUsecase(t)})

			assert.Equal(t, tt.verify, h.verify != nil)
		})
	}
}

func TestGoogleVerifier_RejectsMissingBearer(t *testing.T) {
	verify := googleVerifier("https://notifier.example.com/push")

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verify(req.Context(), req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verify(req.Context(), req))
}
