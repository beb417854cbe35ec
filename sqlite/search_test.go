package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*sqlite.DB, *reportqa.Document, *reportqa.Document) {
		t.Helper()
		db := setupTestDB(t)
		a := createTestDocument(t, db, "A")
		b := createTestDocument(t, db, "B")
		require.NoError(t, sqlite.NewChunkService(db).CreateChunks(context.Background(), []*reportqa.Chunk{
			{DocumentID: a.ID, Content: "revenue", Embedding: []float32{1, 0}, Metadata: reportqa.ChunkMetadata{Position: 0}},
			{DocumentID: a.ID, Content: "mixed", Embedding: []float32{1, 1}, Metadata: reportqa.ChunkMetadata{Position: 1}},
			{DocumentID: a.ID, Content: "digital", Embedding: []float32{0, 1}, Metadata: reportqa.ChunkMetadata{Position: 2}},
			{DocumentID: b.ID, Content: "other company", Embedding: []float32{1, 0}},
		}))
		return db, a, b
	}

	t.Run("orders by similarity within a document", func(t *testing.T) {
		t.Parallel()

		db, a, _ := setup(t)

		results, err := sqlite.NewSearchService(db).Search(context.Background(), []float32{1, 0},
			reportqa.SearchOptions{DocumentID: a.ID})

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "revenue", results[0].Chunk.Content)
		assert.InDelta(t, 1.0, results[0].Score, 0.0001)
		assert.Equal(t, "mixed", results[1].Chunk.Content)
		assert.Equal(t, "digital", results[2].Chunk.Content)
	})

	t.Run("applies limit and min score", func(t *testing.T) {
		t.Parallel()

		db, a, _ := setup(t)

		results, err := sqlite.NewSearchService(db).Search(context.Background(), []float32{1, 0},
			reportqa.SearchOptions{DocumentID: a.ID, Limit: 5, MinScore: 0.5})

		require.NoError(t, err)
		require.Len(t, results, 2)

		limited, err := sqlite.NewSearchService(db).Search(context.Background(), []float32{1, 0},
			reportqa.SearchOptions{DocumentID: a.ID, Limit: 1})

		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, "revenue", limited[0].Chunk.Content)
	})

	t.Run("never returns chunks from other documents", func(t *testing.T) {
		t.Parallel()

		db, _, b := setup(t)

		results, err := sqlite.NewSearchService(db).Search(context.Background(), []float32{1, 0},
			reportqa.SearchOptions{DocumentID: b.ID})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "other company", results[0].Chunk.Content)
	})

	t.Run("rejects empty query embedding", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		_, err := sqlite.NewSearchService(db).Search(context.Background(), nil, reportqa.SearchOptions{})

		assert.Equal(t, reportqa.EINVALID, reportqa.ErrorCode(err))
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, sqlite.CosineSimilarity([]float32{2, 0}, []float32{5, 0}), 0.0001)
	assert.InDelta(t, 0.0, sqlite.CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 0.0001)
	assert.InDelta(t, -1.0, sqlite.CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 0.0001)
	assert.Equal(t, float32(0), sqlite.CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
