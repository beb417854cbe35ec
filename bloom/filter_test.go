package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("reports added content", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.001)
		f.Add("annual report 2024")

		assert.True(t, f.Test("annual report 2024"))
		assert.False(t, f.Test("something else entirely"))
	})

	t.Run("zero capacity is usable", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(0, 0.01)
		f.Add("x")

		assert.True(t, f.Test("x"))
	})
}

func TestDedupeChunks(t *testing.T) {
	t.Parallel()

	t.Run("drops repeated content", func(t *testing.T) {
		t.Parallel()

		chunks := []*reportqa.Chunk{
			{Content: "Acme Annual Report 2024", Metadata: reportqa.ChunkMetadata{Page: 1, Position: 0}},
			{Content: "Revenue grew 12%.", Metadata: reportqa.ChunkMetadata{Page: 1, Position: 1}},
			{Content: "ACME ANNUAL REPORT 2024", Metadata: reportqa.ChunkMetadata{Page: 2, Position: 2}},
			{Content: "Margins expanded.", Metadata: reportqa.ChunkMetadata{Page: 2, Position: 3}},
		}

		out, dropped := bloom.DedupeChunks(chunks, 0.0001)

		require.Len(t, out, 3)
		assert.Equal(t, 1, dropped)
		assert.Equal(t, "Acme Annual Report 2024", out[0].Content)
		assert.Equal(t, "Revenue grew 12%.", out[1].Content)
		assert.Equal(t, "Margins expanded.", out[2].Content)
		for i, c := range out {
			assert.Equal(t, i, c.Metadata.Position)
		}
		assert.Equal(t, 2, out[2].Metadata.Page)
	})

	t.Run("keeps distinct content on false positives", func(t *testing.T) {
		t.Parallel()

		// A near-certain false positive rate saturates the filter after a
		// few additions.
		chunks := make([]*reportqa.Chunk, 200)
		for i := range chunks {
			chunks[i] = &reportqa.Chunk{Content: fmt.Sprintf("note %d to the financial statements", i)}
		}

		out, dropped := bloom.DedupeChunks(chunks, 0.99)

		require.Len(t, out, 200)
		assert.Zero(t, dropped)
		for i, c := range out {
			assert.Equal(t, fmt.Sprintf("note %d to the financial statements", i), c.Content)
			assert.Equal(t, i, c.Metadata.Position)
		}
	})
}
