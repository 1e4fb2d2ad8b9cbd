package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"trucktrace/config"
	"trucktrace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received pushEnvelope
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := &service.TruckLocationEvent{
		RequestID:     "req-1",
		EventID:       "evt-1",
		TruckID:       "truck-1",
		TruckName:     "Taco Loco",
		Latitude:      40.7,
		Longitude:     -74,
		SubscriberIDs: []string{"u1", "u2"},
	}

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishTruckLocationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "truck-1", received.Message.Attributes["truck_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.TruckLocationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_RetriesUnavailableWorker(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.retryInterval = 0

	require.NoError(t, publisher.PublishTruckLocationEvent(context.Background(), &service.TruckLocationEvent{EventID: "evt"}))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantAttempts int32
	}{
		{name: "unavailable gives up after max attempts", status: http.StatusServiceUnavailable, wantAttempts: localMaxAttempts},
		{name: "bad request is not retried", status: http.StatusBadRequest, wantAttempts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				attempts.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
			publisher.retryInterval = 0

			err := publisher.PublishTruckLocationEvent(context.Background(), &service.TruckLocationEvent{EventID: "evt"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), strconv.Itoa(tt.status))
			assert.Equal(t, tt.wantAttempts, attempts.Load())
		})
	}
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	newPublisher := func(cfg *config.PubSubConfig) (service.EventPublisher, error) {
		return NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		})
	}

	noop, err := newPublisher(nil)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, noop)
	assert.NoError(t, noop.PublishTruckLocationEvent(context.Background(), &service.TruckLocationEvent{}))

	local, err := newPublisher(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, local)

	_, err = newPublisher(&config.PubSubConfig{Provider: "local"})
	assert.Error(t, err)

	_, err = newPublisher(&config.PubSubConfig{Provider: "google", ProjectID: "p"})
	assert.Error(t, err)

	_, err = newPublisher(&config.PubSubConfig{Provider: "kafka"})
	assert.Error(t, err)
}
