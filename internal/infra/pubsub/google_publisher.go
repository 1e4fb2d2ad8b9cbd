package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"trucktrace/internal/domain/lifecycle"
	"trucktrace/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher orders messages per truck, so a notifier never sees an
// older arrival after a newer one for the same truck.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(checkCtx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishTruckLocationEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishTruckLocationEvent(ctx context.Context, event *service.TruckLocationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal truck location event")
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.TruckID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// An ordered key stays paused after a failure until resumed.
		p.publisher.ResumePublish(event.TruckID)

		return errors.Wrapf(err, "failed to publish event %s", event.EventID)
	}

	p.logger.Info("[GooglePubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.String("truck_id", event.TruckID),
		slog.String("server_id", serverID),
		slog.Int("subscriber_count", len(event.SubscriberIDs)),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
