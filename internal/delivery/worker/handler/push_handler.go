// Package handler holds the notifier's Pub/Sub push handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"trucktrace/config"
	"trucktrace/internal/delivery/api/response"
	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/constants"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/service"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushVerifier authenticates a push request before its body is read.
type PushVerifier func(ctx context.Context, req *http.Request) error

// PushHandler turns Pub/Sub push messages into truck arrival alerts.
type PushHandler struct {
	verify  PushVerifier
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Google push tokens are
// verified outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify PushVerifier
	if pubsub := params.Config.PubSub; pubsub != nil &&
		pubsub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		verify = googleVerifier(pubsub.PushAudience)
	}

	return newPushHandler(params.AlertUC, verify, params.Logger)
}

func newPushHandler(alertUC usecase.AlertUsecase, verify PushVerifier, logger *slog.Logger) *PushHandler {
	return &PushHandler{verify: verify, alertUC: alertUC, logger: logger}
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery,
// which is answered with 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verify != nil {
		if err := h.verify(ctx, c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}
	}

	pushMsg, event, err := decodePush(c)
	if err != nil {
		logger.Error("[Worker] Malformed push message", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	requestID := h.extractRequestID(ctx, pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing truck location event",
		slog.String("event_id", event.EventID),
		slog.String("truck_id", event.TruckID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int("subscriber_count", len(event.SubscriberIDs)),
	)

	result, err := h.alertUC.ProcessTruckLocationEvent(ctx, event)
	if err != nil {
		retry := isRetryable(err)
		reqLogger.Error("[Worker] Failed to process truck location event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Truck location event processed",
		slog.String("event_id", event.EventID),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_removed", result.InvalidRemoved),
	)

	return response.Success(c, http.StatusOK, result, "")
}

func decodePush(c echo.Context) (*PubSubMessage, *service.TruckLocationEvent, error) {
	var pushMsg PubSubMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&pushMsg); err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidEvent, err.Error())
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidEvent, err.Error())
	}

	var event service.TruckLocationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidEvent, err.Error())
	}
	if event.EventID == "" {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidEvent, "missing event_id")
	}
	if _, err := uuid.Parse(event.TruckID); err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidEvent, "invalid truck_id")
	}

	return &pushMsg, &event, nil
}

// extractRequestID prefers message attributes, then the event, then the X-Request-Id header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.TruckLocationEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func isRetryable(err error) bool {
	var appErr domainerrors.AppError

	return errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusServiceUnavailable
}

// googleVerifier validates the OIDC token Google Pub/Sub attaches to push requests.
// An empty audience falls back to the request URL.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func googleVerifier(audience string) PushVerifier {
	return func(ctx context.Context, req *http.Request) error {
		authHeader := req.Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.New("missing authorization header")
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return errors.New("invalid authorization header format")
		}
		token := strings.TrimPrefix(authHeader, bearerPrefix)

		expected := audience
		if expected == "" {
			scheme := "https"
			if req.TLS == nil {
				scheme = "http"
			}
			expected = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
		}

		payload, err := idtoken.Validate(ctx, token, expected)
		if err != nil {
			return errors.Wrap(err, "failed to validate token")
		}

		if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
			return errors.Errorf("invalid issuer: %s", payload.Issuer)
		}

		if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
			return errors.New("email not verified")
		}

		return nil
	}
}
