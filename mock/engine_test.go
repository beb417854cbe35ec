package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Close(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when CloseFn is unset", func(t *testing.T) {
		t.Parallel()

		idx := &mock.Index{}

		assert.NoError(t, idx.Close())
	})

	t.Run("delegates to CloseFn", func(t *testing.T) {
		t.Parallel()

		var called bool
		idx := &mock.Index{CloseFn: func() error {
			called = true
			return nil
		}}

		require.NoError(t, idx.Close())
		assert.True(t, called)
	})
}

func TestIndexer_BuildIndex(t *testing.T) {
	t.Parallel()

	engine := &mock.QueryEngine{
		QueryFn: func(_ context.Context, q reportqa.Question) (*reportqa.Response, error) {
			return &reportqa.Response{Answer: "answer to " + q.String()}, nil
		},
	}
	indexer := &mock.Indexer{
		BuildIndexFn: func(context.Context, *reportqa.Company) (reportqa.Index, error) {
			return &mock.Index{QueryEngineFn: func() reportqa.QueryEngine { return engine }}, nil
		},
	}

	idx, err := indexer.BuildIndex(context.Background(), reportqa.NewCompany("dir", "A.pdf"))
	require.NoError(t, err)

	resp, err := idx.QueryEngine().Query(context.Background(), reportqa.NewQuestion("Q1"))
	require.NoError(t, err)
	assert.Equal(t, "answer to Q1", resp.Answer)
}
