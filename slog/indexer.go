// Package slog provides logging decorators for reportqa services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reportqa"
)

// Ensure LoggingIndexer implements reportqa.Indexer.
var _ reportqa.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with logging. Indexes it returns log
// every query and their own release.
type LoggingIndexer struct {
	next   reportqa.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next reportqa.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// BuildIndex delegates to the wrapped indexer and logs the operation.
func (ix *LoggingIndexer) BuildIndex(ctx context.Context, company *reportqa.Company) (idx reportqa.Index, err error) {
	defer func(begin time.Time) {
		ix.logger.Info("index built",
			"company", company.Name,
			"path", company.Path,
			"chunks", chunkCount(idx),
			"duplicates", duplicates(idx),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	idx, err = ix.next.BuildIndex(ctx, company)
	if err != nil {
		return nil, err
	}
	return &loggingIndex{next: idx, company: company.Name, logger: ix.logger}, nil
}

// chunkCount reports the chunk count for indexes that expose one.
func chunkCount(idx reportqa.Index) int {
	if c, ok := idx.(interface{ ChunkCount() int }); ok {
		return c.ChunkCount()
	}
	return -1
}

// duplicates reports how many repeated chunks were dropped, for indexes that
// track it.
func duplicates(idx reportqa.Index) int {
	if d, ok := idx.(interface{ Duplicates() int }); ok {
		return d.Duplicates()
	}
	return -1
}

type loggingIndex struct {
	next    reportqa.Index
	company string
	logger  *slog.Logger
}

func (idx *loggingIndex) ChunkCount() int {
	return chunkCount(idx.next)
}

func (idx *loggingIndex) Duplicates() int {
	return duplicates(idx.next)
}

func (idx *loggingIndex) QueryEngine() reportqa.QueryEngine {
	return NewLoggingQueryEngine(idx.next.QueryEngine(), idx.company, idx.logger)
}

func (idx *loggingIndex) Close() (err error) {
	defer func() {
		idx.logger.Debug("index closed", "company", idx.company, "err", err)
	}()
	return idx.next.Close()
}

// Ensure LoggingQueryEngine implements reportqa.QueryEngine.
var _ reportqa.QueryEngine = (*LoggingQueryEngine)(nil)

// LoggingQueryEngine wraps a QueryEngine with logging.
type LoggingQueryEngine struct {
	next    reportqa.QueryEngine
	company string
	logger  *slog.Logger
}

// NewLoggingQueryEngine creates a new LoggingQueryEngine for one company.
func NewLoggingQueryEngine(next reportqa.QueryEngine, company string, logger *slog.Logger) *LoggingQueryEngine {
	return &LoggingQueryEngine{next: next, company: company, logger: logger}
}

// Query delegates to the wrapped engine and logs the operation.
func (e *LoggingQueryEngine) Query(ctx context.Context, q reportqa.Question) (resp *reportqa.Response, err error) {
	defer func(begin time.Time) {
		var answer, sources int
		if resp != nil {
			answer, sources = len(resp.Answer), len(resp.Sources)
		}
		e.logger.Info("query answered",
			"company", e.company,
			"question", q.String(),
			"answer_bytes", answer,
			"sources", sources,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Query(ctx, q)
}
