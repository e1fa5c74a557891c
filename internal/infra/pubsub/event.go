package pubsub

import (
	"encoding/json"
	"strconv"

	"servicelocator/internal/domain/constants"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent returns the JSON payload and the attributes subscribers filter on.
func encodeEvent(event *service.DiscoveryEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode discovery event")
	}

	attributes := map[string]string{
		"event_type": constants.DiscoveryEventType,
		"event_id":   event.EventID,
		"brand":      event.Brand,
		"from_cache": strconv.FormatBool(event.FromCache),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
