package api

import (
	"io"
	"net/http"

	"tablebook/internal/infra/feed"

	"github.com/gin-gonic/gin"
)

type StreamHandler struct {
	feed *feed.RedisChangeFeed
}

func NewStreamHandler(changeFeed *feed.RedisChangeFeed) *StreamHandler {
	return &StreamHandler{feed: changeFeed}
}

// @Summary Reservation change stream
// @Description Server-sent events for reservation inserts and deletes
// @Tags reservations
// @Produce text/event-stream
// @Success 200
// @Router /reservations/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	sub := h.feed.Subscribe(c.Request.Context())
	defer func() { _ = sub.Close() }()

	ctx := c.Request.Context()
	c.Stream(func(_ io.Writer) bool {
		select {
		case event, ok := <-sub.C():
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
