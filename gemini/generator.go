package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/reportqa"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Ensure Generator implements reportqa.Generator at compile time.
var _ reportqa.Generator = (*Generator)(nil)

// Generator implements reportqa.Generator using Google Gemini.
type Generator struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewGenerator creates a new Generator. limiter may be nil.
func NewGenerator(client *genai.Client, model string, limiter *rate.Limiter) *Generator {
	return &Generator{client: client, model: model, limiter: limiter}
}

// Generate answers a question using only the retrieved excerpts.
func (g *Generator) Generate(ctx context.Context, question string, sources []reportqa.SearchResult) (string, error) {
	if question == "" {
		return "", reportqa.Errorf(reportqa.EINVALID, "question required")
	}
	if g.model == "" {
		return "", reportqa.Errorf(reportqa.EINVALID, "language model required")
	}

	if err := wait(ctx, g.limiter); err != nil {
		return "", err
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: BuildUserPrompt(question, sources)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if result == nil {
		return "", reportqa.Errorf(reportqa.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a financial analyst answering questions about a company's annual report. Answer based only on the report excerpts provided and cite page numbers where possible. If the answer is not in the excerpts, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing report excerpts and question.
func BuildUserPrompt(question string, sources []reportqa.SearchResult) string {
	var sb strings.Builder
	sb.WriteString("<excerpts>\n")
	for i, src := range sources {
		if src.Chunk == nil {
			continue
		}
		sb.WriteString("<excerpt>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		if src.Chunk.Metadata.Page > 0 {
			fmt.Fprintf(&sb, "<page>%d</page>\n", src.Chunk.Metadata.Page)
		}
		fmt.Fprintf(&sb, "<content>%s</content>\n", src.Chunk.Content)
		sb.WriteString("</excerpt>\n")
	}
	sb.WriteString("</excerpts>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
