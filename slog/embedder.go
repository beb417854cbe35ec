package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reportqa"
)

// Ensure LoggingEmbedder implements reportqa.Embedder.
var _ reportqa.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with debug logging.
type LoggingEmbedder struct {
	next   reportqa.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next reportqa.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// Embed delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) Embed(ctx context.Context, texts []string) (vecs [][]float32, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("embed",
			"texts", len(texts),
			"vectors", len(vecs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Embed(ctx, texts)
}
