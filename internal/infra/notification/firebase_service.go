// Package notification sends push notifications to registered devices.
package notification

import (
	"context"
	"log/slog"

	"trucktrace/config"
	"trucktrace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxBatchSize is the most tokens Firebase accepts in one multicast request.
const MaxBatchSize = service.MaxPushBatchSize

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatch multicasts msg to at most MaxBatchSize device tokens.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	if len(tokens) > MaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{Sent: response.SuccessCount, Failed: response.FailureCount}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsUnregistered(sendResponse.Error) || messaging.IsInvalidArgument(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

// logOnlyService stands in for Firebase when no credentials are configured.
type logOnlyService struct {
	logger *slog.Logger
}

// NewLogOnlyService returns a NotificationService that only logs what it would send.
func NewLogOnlyService(logger *slog.Logger) service.NotificationService {
	return &logOnlyService{logger: logger}
}

func (s *logOnlyService) SendBatch(_ context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	s.logger.Info("[LogOnlyPush] Batch notification skipped",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
		slog.Any("data", msg.Data),
	)

	return &service.BatchResult{Sent: len(tokens)}, nil
}

// NewNotificationService picks Firebase when credentials are configured.
func NewNotificationService(cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase not configured, push notifications will only be logged")

		return NewLogOnlyService(logger), nil
	}

	return NewFirebaseService(context.Background(), cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
