package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/zepcart/marketplace/internal/adapter/push"
	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/metrics"
)

const defaultSendTimeout = 10 * time.Second

// NotificationDispatcher delivers push messages from a bounded queue with a fixed pool of workers.
// Every message gets exactly one delivery attempt.
type NotificationDispatcher struct {
	sender      push.Sender
	workers     int
	sendTimeout time.Duration
	metrics     *metrics.Metrics
	logger      *slog.Logger

	jobs   chan model.PushMessage
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs dispatcher worker pool.
func NewNotificationDispatcher(sender push.Sender, workers, queueSize int, m *metrics.Metrics, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	return &NotificationDispatcher{
		sender:      sender,
		workers:     workers,
		sendTimeout: defaultSendTimeout,
		metrics:     m,
		logger:      logger,
		jobs:        make(chan model.PushMessage, queueSize),
	}
}

// Start launches background delivery. Calling Start on a running dispatcher is a no-op.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop cancels in-flight deliveries and waits for all workers to finish.
// Messages still queued are discarded.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()

	if pending := len(d.jobs); pending > 0 {
		d.logger.Warn("discarding queued notifications", slog.Int("count", pending))
	}
}

// Dispatch enqueues msg without blocking. It returns false when the queue is full.
func (d *NotificationDispatcher) Dispatch(msg model.PushMessage) bool {
	select {
	case d.jobs <- msg:
		return true
	default:
		d.metrics.PushResult(metrics.PushDropped)
		d.logger.Warn("notification queue full, dropping message",
			slog.String("order_id", msg.Data["orderId"]))
		return false
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.jobs:
			d.deliver(ctx, msg)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, msg model.PushMessage) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	err := d.sender.Send(sendCtx, msg)
	if err == nil {
		d.metrics.PushResult(metrics.PushSent)
		return
	}

	orderID := msg.Data["orderId"]
	var rateLimited push.TooManyRequestsError
	switch {
	case errors.Is(err, push.ErrDisabled):
		d.metrics.PushResult(metrics.PushSkipped)
		d.logger.Debug("push delivery disabled, skipping", slog.String("order_id", orderID))
	case errors.As(err, &rateLimited):
		d.metrics.PushResult(metrics.PushFailed)
		d.logger.Warn("push provider rate limited",
			slog.String("order_id", orderID),
			slog.Duration("retry_after", rateLimited.RetryAfter))
	case errors.Is(err, push.ErrUnregisteredToken):
		d.metrics.PushResult(metrics.PushFailed)
		d.logger.Info("push token no longer registered", slog.String("order_id", orderID))
	default:
		d.metrics.PushResult(metrics.PushFailed)
		d.logger.Error("push delivery failed",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()))
	}
}
