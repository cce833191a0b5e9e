package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsync"
)

// Ensure LoggingReadmeSource implements docsync.ReadmeSource.
var _ docsync.ReadmeSource = (*LoggingReadmeSource)(nil)

// LoggingReadmeSource wraps a ReadmeSource with debug logging.
type LoggingReadmeSource struct {
	next   docsync.ReadmeSource
	logger *slog.Logger
}

// NewLoggingReadmeSource creates a new LoggingReadmeSource.
func NewLoggingReadmeSource(next docsync.ReadmeSource, logger *slog.Logger) *LoggingReadmeSource {
	return &LoggingReadmeSource{next: next, logger: logger}
}

// ReadReadme delegates to the wrapped source and logs the read.
func (s *LoggingReadmeSource) ReadReadme(ctx context.Context) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read README",
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadReadme(ctx)
}
