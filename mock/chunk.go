package mock

import (
	"context"

	"github.com/fwojciec/reportqa"
)

var (
	_ reportqa.ChunkService  = (*ChunkService)(nil)
	_ reportqa.SearchService = (*SearchService)(nil)
)

// ChunkService is a mock implementation of reportqa.ChunkService.
type ChunkService struct {
	CreateChunksFn func(ctx context.Context, chunks []*reportqa.Chunk) error
	FindChunksFn   func(ctx context.Context, filter reportqa.ChunkFilter) ([]*reportqa.Chunk, error)
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*reportqa.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter reportqa.ChunkFilter) ([]*reportqa.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

// SearchService is a mock implementation of reportqa.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, embedding []float32, opts reportqa.SearchOptions) ([]reportqa.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, embedding []float32, opts reportqa.SearchOptions) ([]reportqa.SearchResult, error) {
	return s.SearchFn(ctx, embedding, opts)
}
