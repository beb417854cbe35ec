package mock

import (
	"context"

	"github.com/fwojciec/reportqa"
)

var _ reportqa.ResultSink = (*ResultSink)(nil)

// ResultSink is a mock implementation of reportqa.ResultSink.
type ResultSink struct {
	WriteResultsFn func(ctx context.Context, rows []*reportqa.ResultRow) error
}

func (s *ResultSink) WriteResults(ctx context.Context, rows []*reportqa.ResultRow) error {
	return s.WriteResultsFn(ctx, rows)
}
