package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zepcart/marketplace/internal/domain/model"
)

type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
	Close() error
}

// RedisBroker shares live events between instances through Redis pub/sub.
type RedisBroker struct {
	client redisClient
	buffer int
	logger *slog.Logger
}

// NewRedisBroker connects to addr and verifies the connection.
func NewRedisBroker(ctx context.Context, addr string, logger *slog.Logger) (*RedisBroker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return newRedisBroker(client, logger), nil
}

func newRedisBroker(client redisClient, logger *slog.Logger) *RedisBroker {
	return &RedisBroker{client: client, buffer: defaultSubscriberBuffer, logger: logger}
}

// Publish sends ev as JSON to channel.
func (b *RedisBroker) Publish(ctx context.Context, channel string, ev model.LiveEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}

// Subscribe listens on channels until cancel is called or ctx is done.
func (b *RedisBroker) Subscribe(ctx context.Context, channels ...string) (<-chan model.LiveEvent, func(), error) {
	ps := b.client.Subscribe(ctx, channels...)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan model.LiveEvent, b.buffer)
	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			_ = ps.Close()
		})
	}

	go func() {
		defer close(out)
		b.pump(ctx, stop, ps.Channel(), out)
	}()

	return out, cancel, nil
}

func (b *RedisBroker) pump(ctx context.Context, stop <-chan struct{}, in <-chan *redis.Message, out chan<- model.LiveEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			var ev model.LiveEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				b.logger.Warn("malformed live event", slog.String("channel", msg.Channel), slog.String("error", err.Error()))
				continue
			}
			select {
			case out <- ev:
			default:
				b.logger.Warn("live subscriber lagging, event dropped",
					slog.String("channel", msg.Channel),
					slog.String("event_id", ev.ID))
			}
		}
	}
}

// Close releases the Redis connection pool.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}
