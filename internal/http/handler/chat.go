package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/chat"
	"ashara.health/site/internal/http/dto"
	"ashara.health/site/internal/llm"
)

type ChatHandler struct {
	chat    chat.Service
	timeout time.Duration
}

func NewChatHandler(chatService chat.Service, timeout time.Duration) *ChatHandler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatHandler{
		chat:    chatService,
		timeout: timeout,
	}
}

// Chat relays an upstream completion stream to the caller chunk by chunk.
// The first byte goes out as soon as the provider produces it; chunks are
// forwarded in arrival order with no batching or added framing.
func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	// The deadline bounds the whole request/stream lifetime. Cancellation
	// also fires when the browser aborts the fetch: the request context is
	// our parent, so the upstream stream handle is released either way.
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	stream, err := h.chat.Stream(ctx, history)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat request"})
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")

	// Headers are not flushed until the first chunk, so failures that
	// occur before any output can still produce a JSON error response.
	started := false
	for stream.Next() {
		if _, err := c.Writer.WriteString(stream.Text()); err != nil {
			slog.DebugContext(ctx, "client disconnected mid-stream", "error", err)
			return
		}
		c.Writer.Flush()
		started = true
	}

	if err := stream.Err(); err != nil {
		kind := llm.Classify(err)
		if !started {
			slog.ErrorContext(ctx, "chat stream failed before first byte", "error", err, "kind", kind)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat request"})
			return
		}
		// Partial output already sent: truncate and close. An in-band
		// error marker would render as assistant text in the widget.
		slog.ErrorContext(ctx, "chat stream failed mid-response, truncating", "error", err, "kind", kind)
	}
}
