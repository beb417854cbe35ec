package reportqa

// Default model identifiers.
const (
	DefaultLanguageModel  = "gemini-2.5-flash"
	DefaultEmbeddingModel = "gemini-embedding-001"
)

// Config selects the inference backends and retrieval parameters used by the
// indexing/query engine. It is passed to the engine at construction time.
type Config struct {
	// LanguageModelID selects the model that generates answers.
	LanguageModelID string `json:"languageModelId"`

	// EmbeddingModelID selects the model that embeds chunks and questions.
	EmbeddingModelID string `json:"embeddingModelId"`

	// ChunkTokens is the maximum size of a chunk in tokens.
	ChunkTokens int `json:"chunkTokens"`

	// ChunkOverlap is the number of words shared by consecutive chunks.
	ChunkOverlap int `json:"chunkOverlap"`

	// TopK is the number of chunks retrieved per question.
	TopK int `json:"topK"`

	// MinScore discards retrieved chunks below this similarity (0-1).
	MinScore float32 `json:"minScore"`
}

// DefaultConfig returns a Config with default models and retrieval settings.
func DefaultConfig() Config {
	return Config{
		LanguageModelID:  DefaultLanguageModel,
		EmbeddingModelID: DefaultEmbeddingModel,
		ChunkTokens:      512,
		ChunkOverlap:     40,
		TopK:             5,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.LanguageModelID == "" {
		return Errorf(EINVALID, "language model ID required")
	}
	if c.EmbeddingModelID == "" {
		return Errorf(EINVALID, "embedding model ID required")
	}
	if c.ChunkTokens <= 0 {
		return Errorf(EINVALID, "chunk tokens must be positive")
	}
	if c.ChunkOverlap < 0 {
		return Errorf(EINVALID, "chunk overlap must not be negative")
	}
	if c.TopK <= 0 {
		return Errorf(EINVALID, "top-k must be positive")
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return Errorf(EINVALID, "min score must be between 0 and 1")
	}
	return nil
}
