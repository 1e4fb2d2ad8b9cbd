package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/truck-location-sub"
	localMaxAttempts   = 3
	localRetryInterval = 500 * time.Millisecond
)

// pushEnvelope mirrors the body Pub/Sub POSTs to push subscriptions, so the
// notifier handles local and hosted deliveries the same way.
type pushEnvelope struct {
	Message      pushPayload `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushPayload struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher delivers events straight to a running notifier. A 503 from
// the notifier is retried like Pub/Sub would redeliver it.
type localHTTPPublisher struct {
	endpoint      string
	httpClient    *http.Client
	retryInterval time.Duration
	logger        *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:      endpoint,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		retryInterval: localRetryInterval,
		logger:        logger,
	}
}

func (p *localHTTPPublisher) PublishTruckLocationEvent(ctx context.Context, event *service.TruckLocationEvent) error {
	body, err := encodeEnvelope(event, time.Now())
	if err != nil {
		return err
	}

	logger := p.logger.With(slog.String("event_id", event.EventID), slog.String("endpoint", p.endpoint))

	var lastErr error
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		retry, err := p.post(ctx, body, event.RequestID)
		if err == nil {
			logger.Debug("[LocalPubSub] Event delivered", slog.Int("attempt", attempt))

			return nil
		}
		lastErr = err
		if !retry || attempt == localMaxAttempts {
			break
		}

		logger.Warn("[LocalPubSub] Delivery failed, retrying", slog.Int("attempt", attempt), slog.Any("error", err))
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.retryInterval):
		}
	}

	return lastErr
}

// post reports whether a failed delivery is worth repeating.
func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return true, errors.Wrap(err, "notifier unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode == http.StatusServiceUnavailable:
		return true, errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	default:
		return false, errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}
}

func encodeEnvelope(event *service.TruckLocationEvent, now time.Time) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal truck location event")
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: localSubscription,
		Message: pushPayload{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   event.EventID,
			PublishTime: now.UTC().Format(time.RFC3339),
		},
	})

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
