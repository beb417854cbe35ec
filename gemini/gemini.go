// Package gemini implements embedding, answer generation, and token counting
// on top of Google Gemini.
package gemini

import (
	"context"

	"golang.org/x/time/rate"
)

// Task types for embedding requests.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// maxBatch is the largest number of texts sent in one embedding request.
const maxBatch = 100

// NewLimiter returns a limiter allowing rps requests per second with no
// bursting. A non-positive rps disables limiting.
func NewLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

func wait(ctx context.Context, l *rate.Limiter) error {
	if l == nil {
		return nil
	}
	return l.Wait(ctx)
}
