package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reportqa"
)

// Ensure LoggingExtractor implements reportqa.TextExtractor.
var _ reportqa.TextExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TextExtractor with debug logging.
type LoggingExtractor struct {
	next   reportqa.TextExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next reportqa.TextExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPages delegates to the wrapped extractor and logs page and byte counts.
func (x *LoggingExtractor) ExtractPages(ctx context.Context, path string) (pages []*reportqa.Page, err error) {
	defer func(begin time.Time) {
		var size, empty int
		for _, p := range pages {
			size += len(p.Text)
			if p.Text == "" {
				empty++
			}
		}
		x.logger.Debug("extract",
			"path", path,
			"pages", len(pages),
			"empty_pages", empty,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return x.next.ExtractPages(ctx, path)
}
