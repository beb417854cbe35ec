package mock

import (
	"context"

	"github.com/fwojciec/reportqa"
)

var _ reportqa.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of reportqa.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
