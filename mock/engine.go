package mock

import (
	"context"

	"github.com/fwojciec/reportqa"
)

var (
	_ reportqa.Indexer     = (*Indexer)(nil)
	_ reportqa.Index       = (*Index)(nil)
	_ reportqa.QueryEngine = (*QueryEngine)(nil)
	_ reportqa.Embedder    = (*Embedder)(nil)
	_ reportqa.Generator   = (*Generator)(nil)
)

// Indexer is a mock implementation of reportqa.Indexer.
type Indexer struct {
	BuildIndexFn func(ctx context.Context, company *reportqa.Company) (reportqa.Index, error)
}

func (i *Indexer) BuildIndex(ctx context.Context, company *reportqa.Company) (reportqa.Index, error) {
	return i.BuildIndexFn(ctx, company)
}

// Index is a mock implementation of reportqa.Index.
type Index struct {
	QueryEngineFn func() reportqa.QueryEngine
	CloseFn       func() error
}

func (i *Index) QueryEngine() reportqa.QueryEngine {
	return i.QueryEngineFn()
}

// Close calls CloseFn when set.
func (i *Index) Close() error {
	if i.CloseFn == nil {
		return nil
	}
	return i.CloseFn()
}

// QueryEngine is a mock implementation of reportqa.QueryEngine.
type QueryEngine struct {
	QueryFn func(ctx context.Context, q reportqa.Question) (*reportqa.Response, error)
}

func (e *QueryEngine) Query(ctx context.Context, q reportqa.Question) (*reportqa.Response, error) {
	return e.QueryFn(ctx, q)
}

// Embedder is a mock implementation of reportqa.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedFn(ctx, texts)
}

// Generator is a mock implementation of reportqa.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, question string, sources []reportqa.SearchResult) (string, error)
}

func (g *Generator) Generate(ctx context.Context, question string, sources []reportqa.SearchResult) (string, error) {
	return g.GenerateFn(ctx, question, sources)
}
