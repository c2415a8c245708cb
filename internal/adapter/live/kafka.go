package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/zepcart/marketplace/internal/domain/model"
)

const defaultLogBuffer = 1024

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaLog appends live events to a Kafka topic from a background goroutine.
// Append never blocks the caller; a full buffer drops the event.
type KafkaLog struct {
	w      messageWriter
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	inbox  chan kafka.Message
	done   chan struct{}
}

// NewKafkaLog creates a producer for topic and starts its write loop.
func NewKafkaLog(brokers []string, topic string, logger *slog.Logger) *KafkaLog {
	return newKafkaLog(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}, defaultLogBuffer, logger)
}

func newKafkaLog(w messageWriter, buffer int, logger *slog.Logger) *KafkaLog {
	l := &KafkaLog{
		w:      w,
		logger: logger,
		inbox:  make(chan kafka.Message, buffer),
		done:   make(chan struct{}),
	}
	go l.loop()
	return l
}

func (l *KafkaLog) loop() {
	defer close(l.done)
	for m := range l.inbox {
		if err := l.w.WriteMessages(context.Background(), m); err != nil {
			l.logger.Error("kafka write failed", slog.String("key", string(m.Key)), slog.String("error", err.Error()))
		}
	}
	if err := l.w.Close(); err != nil {
		l.logger.Error("kafka writer close failed", slog.String("error", err.Error()))
	}
}

// Append queues ev keyed by vendor so events of one vendor stay ordered.
func (l *KafkaLog) Append(ev model.LiveEvent) {
	value, err := json.Marshal(ev)
	if err != nil {
		l.logger.Error("encode event for kafka failed", slog.String("event_id", ev.ID), slog.String("error", err.Error()))
		return
	}
	key := ev.VendorID
	if key == "" {
		key = ev.ID
	}
	msg := kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Time:    ev.OccurredAt,
		Headers: []kafka.Header{{Key: "event", Value: []byte(ev.Event)}},
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return
	}
	select {
	case l.inbox <- msg:
	default:
		l.logger.Warn("kafka buffer full, event dropped", slog.String("event_id", ev.ID))
	}
}

// Close flushes queued events and closes the writer, waiting at most until ctx is done.
func (l *KafkaLog) Close(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.inbox)
	}
	l.mu.Unlock()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
