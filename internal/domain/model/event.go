package model

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated         = "order-created"
	EventOrderStatusChanged   = "order-status-changed"
	EventProductStatusChanged = "product-status-changed"
)

// LiveEvent is a message delivered on the live channel.
type LiveEvent struct {
	ID         string          `json:"eventId"`
	Event      string          `json:"event"`
	VendorID   string          `json:"vendorId,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// PushMessage is a single push notification addressed to a device token.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
