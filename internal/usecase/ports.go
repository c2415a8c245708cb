package usecase

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// LiveChannel publishes events to connected vendor dashboards.
type LiveChannel interface {
	PublishToVendor(ctx context.Context, vendorID, event string, payload any) error
	PublishGlobal(ctx context.Context, event string, payload any) error
}

// Notifier hands push messages to background delivery. Dispatch reports whether the message was queued.
type Notifier interface {
	Dispatch(msg model.PushMessage) bool
}
