// Package rag implements the indexing and query engine: each report is
// extracted, chunked, embedded and stored, then questions are answered from
// the chunks most similar to them.
package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/bloom"
)

// DefaultDedupeFPRate is the Bloom filter false positive rate used when
// dropping repeated chunks.
const DefaultDedupeFPRate = 0.0001

// Ensure Indexer implements reportqa.Indexer at compile time.
var _ reportqa.Indexer = (*Indexer)(nil)

// Indexer builds per-report retrieval indexes.
type Indexer struct {
	Extractor     reportqa.TextExtractor
	Chunker       *reportqa.Chunker
	Embedder      reportqa.Embedder // embeds report chunks
	QueryEmbedder reportqa.Embedder // embeds questions
	Documents     reportqa.DocumentService
	Chunks        reportqa.ChunkService
	Search        reportqa.SearchService
	Generator     reportqa.Generator
	Config        reportqa.Config

	// DedupeFPRate enables chunk deduplication when positive.
	DedupeFPRate float64

	// KeepIndexes leaves stored chunks in place when an index is closed.
	KeepIndexes bool
}

// BuildIndex extracts, chunks, embeds, and stores a company's report.
// Any earlier index of the same file is replaced. A failed build leaves no
// document behind.
func (ix *Indexer) BuildIndex(ctx context.Context, company *reportqa.Company) (_ reportqa.Index, err error) {
	if err := company.Validate(); err != nil {
		return nil, err
	}

	pages, err := ix.Extractor.ExtractPages(ctx, company.Path)
	if err != nil {
		return nil, fmt.Errorf("extract %q: %w", company.Path, err)
	}

	texts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	content := strings.Join(texts, "\n\n")
	if strings.TrimSpace(content) == "" {
		return nil, reportqa.Errorf(reportqa.EINVALID, "report %q has no extractable text", company.Path)
	}

	if err := ix.Documents.DeleteDocumentsByFilePath(ctx, company.Path); err != nil {
		return nil, err
	}
	doc := &reportqa.Document{
		CompanyName: company.Name,
		FilePath:    company.Path,
		Content:     content,
		PageCount:   len(pages),
	}
	if err := ix.Documents.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			// ctx may already be canceled.
			_ = ix.Documents.DeleteDocument(context.Background(), doc.ID)
		}
	}()

	chunks, err := ix.Chunker.Split(ctx, pages)
	if err != nil {
		return nil, fmt.Errorf("chunk %q: %w", company.Path, err)
	}
	var duplicates int
	if ix.DedupeFPRate > 0 {
		chunks, duplicates = bloom.DedupeChunks(chunks, ix.DedupeFPRate)
	}

	contents := make([]string, len(chunks))
	for i, c := range chunks {
		c.DocumentID = doc.ID
		contents[i] = c.Content
	}
	vectors, err := ix.Embedder.Embed(ctx, contents)
	if err != nil {
		return nil, fmt.Errorf("embed %q: %w", company.Path, err)
	}
	if len(vectors) != len(chunks) {
		return nil, reportqa.Errorf(reportqa.EINTERNAL, "embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}
	for i, c := range chunks {
		c.Embedding = vectors[i]
	}

	if err := ix.Chunks.CreateChunks(ctx, chunks); err != nil {
		return nil, err
	}

	return &Index{
		indexer:    ix,
		company:    company,
		document:   doc,
		chunks:     len(chunks),
		duplicates: duplicates,
	}, nil
}

// Ensure Index implements reportqa.Index at compile time.
var _ reportqa.Index = (*Index)(nil)

// Index is the stored retrieval index of one report.
type Index struct {
	indexer    *Indexer
	company    *reportqa.Company
	document   *reportqa.Document
	chunks     int
	duplicates int
}

// DocumentID returns the ID of the indexed document.
func (idx *Index) DocumentID() string {
	return idx.document.ID
}

// ChunkCount returns the number of chunks stored for the report.
func (idx *Index) ChunkCount() int {
	return idx.chunks
}

// Duplicates returns the number of repeated chunks dropped before storage.
func (idx *Index) Duplicates() int {
	return idx.duplicates
}

// QueryEngine returns a query interface bound to this index.
func (idx *Index) QueryEngine() reportqa.QueryEngine {
	return &QueryEngine{index: idx}
}

// Close removes the stored document and chunks unless KeepIndexes is set.
func (idx *Index) Close() error {
	if idx.indexer.KeepIndexes {
		return nil
	}
	return idx.indexer.Documents.DeleteDocument(context.Background(), idx.document.ID)
}

// Ensure QueryEngine implements reportqa.QueryEngine at compile time.
var _ reportqa.QueryEngine = (*QueryEngine)(nil)

// QueryEngine answers questions from a single Index.
type QueryEngine struct {
	index *Index
}

// Query embeds the question, retrieves the closest chunks of the report, and
// generates an answer from them.
func (e *QueryEngine) Query(ctx context.Context, q reportqa.Question) (*reportqa.Response, error) {
	text := strings.TrimSpace(q.String())
	if text == "" {
		return nil, reportqa.Errorf(reportqa.EINVALID, "question required")
	}

	ix := e.index.indexer
	vectors, err := ix.QueryEmbedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) != 1 {
		return nil, reportqa.Errorf(reportqa.EINTERNAL, "embedder returned %d vectors for 1 question", len(vectors))
	}

	results, err := ix.Search.Search(ctx, vectors[0], reportqa.SearchOptions{
		DocumentID: e.index.document.ID,
		Limit:      ix.Config.TopK,
		MinScore:   ix.Config.MinScore,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	answer, err := ix.Generator.Generate(ctx, text, results)
	if err != nil {
		return nil, err
	}

	return &reportqa.Response{Answer: answer, Sources: results}, nil
}
