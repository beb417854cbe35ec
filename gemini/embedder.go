package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/reportqa"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Ensure Embedder implements reportqa.Embedder at compile time.
var _ reportqa.Embedder = (*Embedder)(nil)

// Embedder implements reportqa.Embedder using the Gemini embedding API.
type Embedder struct {
	client   *genai.Client
	model    string
	taskType string
	limiter  *rate.Limiter
}

// NewEmbedder creates an Embedder for model. taskType is one of the Task*
// constants; limiter may be nil.
func NewEmbedder(client *genai.Client, model, taskType string, limiter *rate.Limiter) *Embedder {
	return &Embedder{client: client, model: model, taskType: taskType, limiter: limiter}
}

// Embed returns one vector per text, batching requests as needed.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if e.model == "" {
		return nil, reportqa.Errorf(reportqa.EINVALID, "embedding model required")
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatch {
		end := min(start+maxBatch, len(texts))

		contents := make([]*genai.Content, 0, end-start)
		for _, t := range texts[start:end] {
			contents = append(contents, genai.NewContentFromText(t, genai.RoleUser))
		}

		if err := wait(ctx, e.limiter); err != nil {
			return nil, err
		}
		resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
			TaskType: e.taskType,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini embedding failed: %w", err)
		}
		if resp == nil || len(resp.Embeddings) != end-start {
			return nil, reportqa.Errorf(reportqa.EINTERNAL, "gemini returned %d embeddings for %d texts", embeddingCount(resp), end-start)
		}
		for _, emb := range resp.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}
	return vectors, nil
}

func embeddingCount(resp *genai.EmbedContentResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Embeddings)
}
