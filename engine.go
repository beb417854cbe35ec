package reportqa

import "context"

// Indexer builds a queryable index over a single report.
type Indexer interface {
	// BuildIndex extracts, chunks, and embeds the company's report.
	// Returns EINVALID if the report has no extractable text.
	BuildIndex(ctx context.Context, company *Company) (Index, error)
}

// Index is a queryable index over one report.
type Index interface {
	// QueryEngine returns a query interface bound to this index.
	QueryEngine() QueryEngine

	// Close releases resources held by the index.
	Close() error
}

// QueryEngine answers questions against an index.
type QueryEngine interface {
	Query(ctx context.Context, q Question) (*Response, error)
}

// Response is the engine's answer to a single question.
type Response struct {
	Answer  string         `json:"answer"`
	Sources []SearchResult `json:"sources,omitempty"`
}

// Embedder converts text into embedding vectors.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces an answer to a question from retrieved context.
type Generator interface {
	Generate(ctx context.Context, question string, sources []SearchResult) (string, error)
}
