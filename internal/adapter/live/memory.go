package live

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zepcart/marketplace/internal/domain/model"
)

const defaultSubscriberBuffer = 64

type subscription struct {
	ch       chan model.LiveEvent
	channels []string
}

// MemoryBroker fans events out to subscribers of this process only.
type MemoryBroker struct {
	buffer int
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[string]map[*subscription]struct{}
}

// NewMemoryBroker constructs an in-process broker.
func NewMemoryBroker(logger *slog.Logger) *MemoryBroker {
	return &MemoryBroker{
		buffer: defaultSubscriberBuffer,
		logger: logger,
		subs:   make(map[string]map[*subscription]struct{}),
	}
}

// Publish hands ev to every subscriber of channel. Slow subscribers miss events.
func (b *MemoryBroker) Publish(_ context.Context, channel string, ev model.LiveEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[channel] {
		select {
		case sub.ch <- ev:
		default:
			b.logger.Warn("live subscriber lagging, event dropped",
				slog.String("channel", channel),
				slog.String("event_id", ev.ID))
		}
	}
	return nil
}

// Subscribe registers for channels until cancel is called or ctx is done.
func (b *MemoryBroker) Subscribe(ctx context.Context, channels ...string) (<-chan model.LiveEvent, func(), error) {
	sub := &subscription{ch: make(chan model.LiveEvent, b.buffer), channels: channels}

	b.mu.Lock()
	for _, name := range channels {
		if b.subs[name] == nil {
			b.subs[name] = make(map[*subscription]struct{})
		}
		b.subs[name][sub] = struct{}{}
	}
	b.mu.Unlock()

	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			b.mu.Lock()
			for _, name := range sub.channels {
				delete(b.subs[name], sub)
				if len(b.subs[name]) == 0 {
					delete(b.subs, name)
				}
			}
			b.mu.Unlock()
			close(sub.ch)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-stop:
		}
	}()

	return sub.ch, cancel, nil
}

// Close stops delivery to every current subscriber. Subscriber channels close
// when their own subscription ends.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	b.subs = make(map[string]map[*subscription]struct{})
	b.mu.Unlock()
	return nil
}
