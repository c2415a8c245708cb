package live

import (
	"context"
	"time"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// Channel publishes vendor scoped and broadcast events and mirrors them to the event log.
type Channel struct {
	broker Broker
	log    EventLog
	now    func() time.Time
}

// NewChannel constructs Channel.
func NewChannel(broker Broker, log EventLog) *Channel {
	if log == nil {
		log = NopLog{}
	}
	return &Channel{broker: broker, log: log, now: time.Now}
}

// PublishToVendor delivers event to subscribers of vendorID.
func (c *Channel) PublishToVendor(ctx context.Context, vendorID, event string, payload any) error {
	ev, err := newEvent(vendorID, event, payload, c.now())
	if err != nil {
		return err
	}
	c.log.Append(ev)
	return c.broker.Publish(ctx, VendorChannel(vendorID), ev)
}

// PublishGlobal delivers event to every subscriber.
func (c *Channel) PublishGlobal(ctx context.Context, event string, payload any) error {
	ev, err := newEvent("", event, payload, c.now())
	if err != nil {
		return err
	}
	c.log.Append(ev)
	return c.broker.Publish(ctx, BroadcastChannel, ev)
}

// SubscribeVendor streams events for vendorID together with broadcast events.
// The returned cancel func releases the subscription.
func (c *Channel) SubscribeVendor(ctx context.Context, vendorID string) (<-chan model.LiveEvent, func(), error) {
	return c.broker.Subscribe(ctx, VendorChannel(vendorID), BroadcastChannel)
}
