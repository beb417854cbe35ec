package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/mock"
	rqslog "github.com/fwojciec/reportqa/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countedIndex struct {
	mock.Index
	chunks     int
	duplicates int
}

func (i *countedIndex) ChunkCount() int { return i.chunks }
func (i *countedIndex) Duplicates() int { return i.duplicates }

func TestLoggingIndexer_BuildIndex(t *testing.T) {
	t.Parallel()

	t.Run("logs company, chunk counts, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Indexer{
			BuildIndexFn: func(ctx context.Context, c *reportqa.Company) (reportqa.Index, error) {
				return &countedIndex{chunks: 42, duplicates: 3}, nil
			},
		}

		indexer := rqslog.NewLoggingIndexer(inner, logger)
		idx, err := indexer.BuildIndex(context.Background(), reportqa.NewCompany("/reports", "Acme.pdf"))

		require.NoError(t, err)
		require.NotNil(t, idx)
		output := buf.String()
		assert.Contains(t, output, `msg="index built"`)
		assert.Contains(t, output, "company=Acme")
		assert.Contains(t, output, "path=/reports/Acme.pdf")
		assert.Contains(t, output, "chunks=42")
		assert.Contains(t, output, "duplicates=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and returns errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Indexer{
			BuildIndexFn: func(ctx context.Context, c *reportqa.Company) (reportqa.Index, error) {
				return nil, errors.New("no extractable text")
			},
		}

		indexer := rqslog.NewLoggingIndexer(inner, logger)
		idx, err := indexer.BuildIndex(context.Background(), reportqa.NewCompany("/reports", "Acme.pdf"))

		require.Error(t, err)
		assert.Nil(t, idx)
		assert.Contains(t, buf.String(), `err="no extractable text"`)
	})

	t.Run("wrapped index logs queries and delegates close", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		var closed bool
		inner := &mock.Indexer{
			BuildIndexFn: func(ctx context.Context, c *reportqa.Company) (reportqa.Index, error) {
				return &mock.Index{
					QueryEngineFn: func() reportqa.QueryEngine {
						return &mock.QueryEngine{
							QueryFn: func(ctx context.Context, q reportqa.Question) (*reportqa.Response, error) {
								return &reportqa.Response{Answer: "ten"}, nil
							},
						}
					},
					CloseFn: func() error {
						closed = true
						return nil
					},
				}, nil
			},
		}

		indexer := rqslog.NewLoggingIndexer(inner, logger)
		idx, err := indexer.BuildIndex(context.Background(), reportqa.NewCompany("/reports", "Acme.pdf"))
		require.NoError(t, err)

		resp, err := idx.QueryEngine().Query(context.Background(), reportqa.NewQuestion("How many?"))
		require.NoError(t, err)
		assert.Equal(t, "ten", resp.Answer)
		require.NoError(t, idx.Close())

		assert.True(t, closed)
		output := buf.String()
		assert.Contains(t, output, "chunks=-1")
		assert.Contains(t, output, "duplicates=-1")
		assert.Contains(t, output, `msg="query answered"`)
		assert.Contains(t, output, `question="How many?"`)
		assert.Contains(t, output, "answer_bytes=3")
		assert.Contains(t, output, `msg="index closed"`)
	})
}

func TestLoggingQueryEngine_Query(t *testing.T) {
	t.Parallel()

	t.Run("logs failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.QueryEngine{
			QueryFn: func(ctx context.Context, q reportqa.Question) (*reportqa.Response, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		engine := rqslog.NewLoggingQueryEngine(inner, "Acme", logger)
		_, err := engine.Query(context.Background(), reportqa.NewQuestion("Q1"))

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "company=Acme")
		assert.Contains(t, output, "answer_bytes=0")
		assert.Contains(t, output, `err="quota exceeded"`)
	})
}
