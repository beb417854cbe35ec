package reportqa

import (
	"strconv"
	"strings"
)

// FormatSources formats retrieved chunks for display or LLM context.
// Each chunk is headed with its page number when known.
// Chunks are separated by blank lines.
func FormatSources(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Chunk == nil {
			continue
		}
		header := "## Excerpt"
		if r.Chunk.Metadata.Page > 0 {
			header += " (page " + strconv.Itoa(r.Chunk.Metadata.Page) + ")"
		}
		parts = append(parts, header+"\n"+r.Chunk.Content)
	}

	return strings.Join(parts, "\n\n")
}
