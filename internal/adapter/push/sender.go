package push

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zepcart/marketplace/internal/domain/model"
)

var (
	// ErrDisabled is returned when no push transport is configured.
	ErrDisabled = errors.New("push delivery disabled")
	// ErrUnregisteredToken means the device token is no longer valid.
	ErrUnregisteredToken = errors.New("push token not registered")
)

// TooManyRequestsError represents rate limiting signal from the push provider.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Sender delivers a single push message.
type Sender interface {
	Send(ctx context.Context, msg model.PushMessage) error
}

// NopSender accepts nothing; used when no transport is configured.
type NopSender struct{}

// Send always reports ErrDisabled.
func (NopSender) Send(context.Context, model.PushMessage) error {
	return ErrDisabled
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
