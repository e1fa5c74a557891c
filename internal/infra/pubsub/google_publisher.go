package pubsub

import (
	"context"
	"log/slog"
	"time"

	"servicelocator/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Discovery events are small and frequent; batch them briefly instead of one RPC each.
const (
	publishDelayThreshold = 20 * time.Millisecond
	publishCountThreshold = 50
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher checks that the topic exists before returning a publisher for it.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold
	publisher.PublishSettings.CountThreshold = publishCountThreshold

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishDiscoveryEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishDiscoveryEvent(ctx context.Context, event *service.DiscoveryEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish event %s", event.EventID)
	}

	p.logger.Debug("Discovery event published",
		slog.String("event_id", event.EventID),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages, then closes the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
