package pubsub

import (
	"encoding/json"

	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"
)

// encodedEvent is a meal plan event ready for either transport.
type encodedEvent struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeEvent serializes the event body and derives the attributes subscribers
// filter on. Events of one user share an ordering key so that a plan's
// generation is always delivered before its dining-out changes.
func encodeEvent(event *service.MealPlanEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("meal plan event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode meal plan event")
	}

	attributes := map[string]string{
		"type":    event.Type,
		"plan_id": event.PlanID,
		"user_id": event.UserID,
	}
	if event.Source != "" {
		attributes["source"] = event.Source
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &encodedEvent{
		data:        data,
		attributes:  attributes,
		orderingKey: event.UserID,
	}, nil
}
