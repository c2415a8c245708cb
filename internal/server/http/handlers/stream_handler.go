package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zepcart/marketplace/internal/server/http/dto"
)

const defaultKeepAlive = 25 * time.Second

// StreamHandler pushes live events to vendor dashboards over Server-Sent Events.
type StreamHandler struct {
	facade    StreamFacade
	keepAlive time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

// NewStreamHandler constructs StreamHandler.
func NewStreamHandler(facade StreamFacade) *StreamHandler {
	return &StreamHandler{facade: facade, keepAlive: defaultKeepAlive, done: make(chan struct{})}
}

// Close ends every open stream and refuses new ones. http.Server.Shutdown does not
// cancel in-flight request contexts, so the server calls Close when shutdown begins.
func (h *StreamHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Vendor handles GET /api/order/vendor/stream.
func (h *StreamHandler) Vendor(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}

	select {
	case <-h.done:
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.Fail("server is shutting down"))
		return
	default:
	}

	ctx := c.Request.Context()
	events, cancel, err := h.facade.SubscribeVendor(ctx, identity)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(ev.Event, ev)
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Unix())
			c.Writer.Flush()
		}
	}
}
