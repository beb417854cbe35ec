package mock

import (
	"context"

	"github.com/fwojciec/reportqa"
)

var _ reportqa.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of reportqa.TextExtractor.
type TextExtractor struct {
	ExtractPagesFn func(ctx context.Context, path string) ([]*reportqa.Page, error)
}

func (e *TextExtractor) ExtractPages(ctx context.Context, path string) ([]*reportqa.Page, error) {
	return e.ExtractPagesFn(ctx, path)
}
