package reportqa

import (
	"context"
	"strings"
)

// Chunk represents a section of a document optimized for embedding and retrieval.
type Chunk struct {
	ID         string        `json:"id"`
	DocumentID string        `json:"documentId"`
	Content    string        `json:"content"`
	Embedding  []float32     `json:"embedding,omitempty"`
	Metadata   ChunkMetadata `json:"metadata"`
}

// ChunkMetadata contains contextual information about a chunk.
type ChunkMetadata struct {
	// Page the chunk was taken from (1-based).
	Page int `json:"page,omitempty"`

	// Position of the chunk within the document (0-based).
	Position int `json:"position"`

	// Tokens is the token count reported when the chunk was built.
	Tokens int `json:"tokens,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.DocumentID == "" {
		return Errorf(EINVALID, "chunk document ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// ChunkService represents a service for managing chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunks retrieves chunks matching the filter, ordered by position.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID         *string `json:"id"`
	DocumentID *string `json:"documentId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SearchService provides semantic search over chunks.
type SearchService interface {
	// Search returns chunks ordered by similarity to the query embedding.
	Search(ctx context.Context, embedding []float32, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Restrict results to a single document
	DocumentID string `json:"documentId,omitempty"`

	// Maximum number of results to return
	Limit int `json:"limit,omitempty"`

	// Minimum similarity score (0-1)
	MinScore float32 `json:"minScore,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// wordsPerToken approximates English text density for the initial window size.
const wordsPerToken = 0.75

// Chunker splits report pages into overlapping word windows that fit within
// a token budget. Chunks never span pages.
type Chunker struct {
	// Counter measures window size. When nil, the word-based estimate is trusted.
	Counter TokenCounter

	MaxTokens int
	Overlap   int // words shared by consecutive chunks on the same page
}

// Split chunks all pages. Position is assigned across the whole document.
func (c *Chunker) Split(ctx context.Context, pages []*Page) ([]*Chunk, error) {
	if c.MaxTokens <= 0 {
		return nil, Errorf(EINVALID, "chunker max tokens must be positive")
	}

	window := int(float64(c.MaxTokens) * wordsPerToken)
	if window < 1 {
		window = 1
	}
	overlap := c.Overlap
	if overlap >= window {
		overlap = window - 1
	}

	var chunks []*Chunk
	for _, page := range pages {
		words := strings.Fields(page.Text)
		start := 0
		for start < len(words) {
			end := min(start+window, len(words))
			content, tokens, err := c.fit(ctx, words, start, &end)
			if err != nil {
				return nil, err
			}

			chunks = append(chunks, &Chunk{
				Content: content,
				Metadata: ChunkMetadata{
					Page:     page.Number,
					Position: len(chunks),
					Tokens:   tokens,
				},
			})

			if end >= len(words) {
				break
			}
			start = max(end-overlap, start+1)
		}
	}
	return chunks, nil
}

// fit shrinks words[start:*end] until it fits MaxTokens and returns its text.
func (c *Chunker) fit(ctx context.Context, words []string, start int, end *int) (string, int, error) {
	for {
		content := strings.Join(words[start:*end], " ")
		if c.Counter == nil {
			return content, 0, nil
		}
		n, err := c.Counter.CountTokens(ctx, content)
		if err != nil {
			return "", 0, err
		}
		if n <= c.MaxTokens || *end-start == 1 {
			return content, n, nil
		}
		*end = start + (*end-start)/2
	}
}
