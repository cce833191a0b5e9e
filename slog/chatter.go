package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsync"
)

// Ensure LoggingChatter implements docsync.Chatter.
var _ docsync.Chatter = (*LoggingChatter)(nil)

// LoggingChatter wraps a Chatter with debug logging.
type LoggingChatter struct {
	next   docsync.Chatter
	logger *slog.Logger
}

// NewLoggingChatter creates a new LoggingChatter.
func NewLoggingChatter(next docsync.Chatter, logger *slog.Logger) *LoggingChatter {
	return &LoggingChatter{next: next, logger: logger}
}

// Chat delegates to the wrapped chatter and logs the round trip.
func (c *LoggingChatter) Chat(ctx context.Context, req docsync.ChatRequest) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("chat completion",
			"model", req.Model,
			"message_length", len(req.Message),
			"reply_length", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Chat(ctx, req)
}

// ListModels delegates to the wrapped chatter and logs the operation.
func (c *LoggingChatter) ListModels(ctx context.Context) (models []docsync.Model, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("list models",
			"count", len(models),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ListModels(ctx)
}
