package live

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// BroadcastChannel carries events addressed to every connected client.
const BroadcastChannel = "broadcast"

// VendorChannel returns the channel name scoped to a single vendor.
func VendorChannel(vendorID string) string {
	return "vendor:" + vendorID
}

// Broker moves live events between publishers and subscribers.
type Broker interface {
	Publish(ctx context.Context, channel string, ev model.LiveEvent) error
	Subscribe(ctx context.Context, channels ...string) (<-chan model.LiveEvent, func(), error)
	Close() error
}

// EventLog keeps a durable copy of published events.
type EventLog interface {
	Append(ev model.LiveEvent)
	Close(ctx context.Context) error
}

// NopLog discards events.
type NopLog struct{}

// Append does nothing.
func (NopLog) Append(model.LiveEvent) {}

// Close does nothing.
func (NopLog) Close(context.Context) error { return nil }

func newEvent(vendorID, event string, payload any, now time.Time) (model.LiveEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return model.LiveEvent{}, fmt.Errorf("encode %s payload: %w", event, err)
	}
	return model.LiveEvent{
		ID:         uuid.NewString(),
		Event:      event,
		VendorID:   vendorID,
		OccurredAt: now.UTC(),
		Payload:    raw,
	}, nil
}
