package service

import (
	"context"
	"time"
)

// DiscoveryEvent is emitted after a discovery call produced results
type DiscoveryEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Brand       string    `json:"brand"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Radius      int       `json:"radius"`
	Endpoint    string    `json:"endpoint,omitempty"` // Empty when served from cache
	FromCache   bool      `json:"from_cache"`
	ResultCount int       `json:"result_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDiscoveryEvent publishes a discovery event for downstream analytics
	PublishDiscoveryEvent(ctx context.Context, event *DiscoveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
