package test

import (
	"context"
	"sync"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// PublishedEvent is one recorded live channel publication.
type PublishedEvent struct {
	VendorID string
	Event    string
	Payload  any
}

// LiveChannelStub records publications.
type LiveChannelStub struct {
	Err error

	mu     sync.Mutex
	vendor []PublishedEvent
	global []PublishedEvent
}

// PublishToVendor records a vendor scoped event.
func (s *LiveChannelStub) PublishToVendor(ctx context.Context, vendorID, event string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendor = append(s.vendor, PublishedEvent{VendorID: vendorID, Event: event, Payload: payload})
	return s.Err
}

// PublishGlobal records a broadcast event.
func (s *LiveChannelStub) PublishGlobal(ctx context.Context, event string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.global = append(s.global, PublishedEvent{Event: event, Payload: payload})
	return s.Err
}

// VendorEvents returns recorded vendor events.
func (s *LiveChannelStub) VendorEvents() []PublishedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PublishedEvent(nil), s.vendor...)
}

// GlobalEvents returns recorded broadcast events.
func (s *LiveChannelStub) GlobalEvents() []PublishedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PublishedEvent(nil), s.global...)
}

// NotifierStub records dispatched push messages.
type NotifierStub struct {
	Reject bool

	mu       sync.Mutex
	messages []model.PushMessage
}

// Dispatch records msg and reports acceptance.
func (s *NotifierStub) Dispatch(msg model.PushMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Reject {
		return false
	}
	s.messages = append(s.messages, msg)
	return true
}

// Messages returns accepted messages.
func (s *NotifierStub) Messages() []model.PushMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.PushMessage(nil), s.messages...)
}

// SenderStub delivers push messages through an override or records them.
type SenderStub struct {
	SendFn func(context.Context, model.PushMessage) error

	mu   sync.Mutex
	sent []model.PushMessage
}

// Send records msg and returns override result.
func (s *SenderStub) Send(ctx context.Context, msg model.PushMessage) error {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	return nil
}

// Sent returns delivered messages.
func (s *SenderStub) Sent() []model.PushMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.PushMessage(nil), s.sent...)
}
