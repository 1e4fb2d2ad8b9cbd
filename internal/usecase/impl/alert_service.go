package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/domain/geo"
	"trucktrace/internal/domain/repository"
	"trucktrace/internal/domain/service"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type alertService struct {
	userRepo        repository.UserRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		userRepo:        params.UserRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ProcessTruckLocationEvent pushes the arrival to every subscriber device in range.
func (s *alertService) ProcessTruckLocationEvent(ctx context.Context, event *service.TruckLocationEvent) (*usecase.AlertResult, error) {
	logger := s.log(ctx).With(slog.String("event_id", event.EventID), slog.String("truck_id", event.TruckID))
	result := &usecase.AlertResult{}

	userIDs := parseSubscriberIDs(event.SubscriberIDs)
	if len(userIDs) == 0 {
		logger.Debug("Event has no subscribers")

		return result, nil
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDeliveryUnavailable, err.Error())
	}

	origin := geo.Point{Lat: event.Latitude, Lng: event.Longitude}
	recipients := make(map[uuid.UUID]*entity.User, len(users))
	recipientIDs := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		if !user.PushNotificationsEnabled {
			continue
		}
		recipients[user.ID] = user
		recipientIDs = append(recipientIDs, user.ID)
	}
	if len(recipientIDs) == 0 {
		logger.Debug("No subscribers with push enabled")

		return result, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, recipientIDs)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDeliveryUnavailable, err.Error())
	}

	tokens := targetTokens(devices, recipients, origin)
	result.Recipients = len(tokens)
	if len(tokens) == 0 {
		logger.Debug("No devices within notification radius")

		return result, nil
	}

	msg := arrivalMessage(event)

	var (
		invalidTokens []string
		failedBatches int
		batches       int
	)
	for i := 0; i < len(tokens); i += service.MaxPushBatchSize {
		end := min(i+service.MaxPushBatchSize, len(tokens))
		batch := tokens[i:end]
		batches++

		sent, err := s.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			logger.Error("Failed to send notification batch", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			failedBatches++
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent.Sent
		result.Failed += sent.Failed
		invalidTokens = append(invalidTokens, sent.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		removed, err := s.deviceRepo.DeleteDevicesByTokens(ctx, invalidTokens)
		if err != nil {
			logger.Error("Failed to remove invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
		result.InvalidRemoved = int(removed)
	}

	if failedBatches == batches {
		return nil, errors.Wrap(domainerrors.ErrDeliveryUnavailable, "every notification batch failed")
	}

	logger.Info("Truck location event delivered",
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_removed", result.InvalidRemoved),
	)

	return result, nil
}

// arrivalMessage carries the ids a client needs to open the truck's page.
func arrivalMessage(event *service.TruckLocationEvent) *service.PushMessage {
	body := event.Address
	if body == "" {
		body = "Your favorite truck just opened at a new spot."
	}

	return &service.PushMessage{
		Title: fmt.Sprintf("%s is open nearby", event.TruckName),
		Body:  body,
		Data: map[string]string{
			"event_id":    event.EventID,
			"truck_id":    event.TruckID,
			"location_id": event.LocationID,
			"latitude":    strconv.FormatFloat(event.Latitude, 'f', 6, 64),
			"longitude":   strconv.FormatFloat(event.Longitude, 'f', 6, 64),
		},
	}
}

// parseSubscriberIDs drops malformed and repeated ids.
func parseSubscriberIDs(raw []string) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// targetTokens keeps devices within their owner's radius. Devices without a
// known position are always kept.
func targetTokens(devices []*entity.UserDevice, recipients map[uuid.UUID]*entity.User, origin geo.Point) []string {
	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		user, ok := recipients[device.UserID]
		if !ok || device.FCMToken == "" {
			continue
		}
		if _, dup := seen[device.FCMToken]; dup {
			continue
		}

		if position, ok := device.Position(); ok {
			if geo.DistanceMiles(origin, position) > user.AlertRadiusMiles() {
				continue
			}
		}

		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}
