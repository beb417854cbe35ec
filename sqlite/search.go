package sqlite

import (
	"context"
	"math"
	"sort"

	"github.com/fwojciec/reportqa"
)

// Compile-time interface verification.
var _ reportqa.SearchService = (*SearchService)(nil)

// SearchService implements reportqa.SearchService by scoring stored chunk
// embeddings with cosine similarity. Reports are small enough that a full
// scan of one document's chunks is fast.
type SearchService struct {
	chunks *ChunkService
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{chunks: NewChunkService(db)}
}

// Search returns the best-matching chunks, highest score first. Ties keep
// document order.
func (s *SearchService) Search(ctx context.Context, embedding []float32, opts reportqa.SearchOptions) ([]reportqa.SearchResult, error) {
	if len(embedding) == 0 {
		return nil, reportqa.Errorf(reportqa.EINVALID, "query embedding required")
	}

	var filter reportqa.ChunkFilter
	if opts.DocumentID != "" {
		filter.DocumentID = &opts.DocumentID
	}
	chunks, err := s.chunks.FindChunks(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]reportqa.SearchResult, 0, len(chunks))
	for _, c := range chunks {
		if len(c.Embedding) != len(embedding) {
			continue
		}
		score := CosineSimilarity(embedding, c.Embedding)
		if score < opts.MinScore {
			continue
		}
		results = append(results, reportqa.SearchResult{Chunk: c, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0 if
// either is a zero vector. Vectors must have equal length.
func CosineSimilarity(a, b []float32) float32 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
