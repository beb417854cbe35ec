// Package lru caches embeddings in memory so repeated texts, such as the
// same question asked of every report, are embedded once per run.
package lru

import (
	"context"

	"github.com/fwojciec/reportqa"
	golru "github.com/hashicorp/golang-lru/v2"
)

// Ensure Embedder implements reportqa.Embedder at compile time.
var _ reportqa.Embedder = (*Embedder)(nil)

// Embedder wraps a reportqa.Embedder with an LRU cache keyed by text.
type Embedder struct {
	next  reportqa.Embedder
	cache *golru.Cache[string, []float32]
}

// NewEmbedder creates a caching Embedder holding up to size vectors.
func NewEmbedder(next reportqa.Embedder, size int) (*Embedder, error) {
	c, err := golru.New[string, []float32](size)
	if err != nil {
		return nil, err
	}
	return &Embedder{next: next, cache: c}, nil
}

// Embed returns cached vectors where available and embeds the rest in one
// call to the wrapped embedder.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int
	for i, t := range texts {
		if v, ok := e.cache.Get(t); ok {
			out[i] = v
			continue
		}
		missing = append(missing, t)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return out, nil
	}

	vectors, err := e.next.Embed(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(missing) {
		return nil, reportqa.Errorf(reportqa.EINTERNAL, "embedder returned %d vectors for %d texts", len(vectors), len(missing))
	}
	for j, v := range vectors {
		e.cache.Add(missing[j], v)
		out[missingIdx[j]] = v
	}
	return out, nil
}

// Len returns the number of cached vectors.
func (e *Embedder) Len() int {
	return e.cache.Len()
}
