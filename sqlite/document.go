package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/reportqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ reportqa.DocumentService = (*DocumentService)(nil)

// DocumentService implements reportqa.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes the xxHash of content as a big-endian hex string.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *reportqa.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ExtractedAt = time.Now().UTC()
	doc.ContentHash = HashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, company_name, file_path, content, content_hash, page_count, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.CompanyName, doc.FilePath, doc.Content, doc.ContentHash,
		doc.PageCount, doc.ExtractedAt.Format(time.RFC3339))

	return err
}

const documentColumns = "id, company_name, file_path, content, content_hash, page_count, extracted_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*reportqa.Document, error) {
	var doc reportqa.Document
	var extractedAt string

	if err := row.Scan(&doc.ID, &doc.CompanyName, &doc.FilePath, &doc.Content,
		&doc.ContentHash, &doc.PageCount, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	doc.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*reportqa.Document, error) {
	doc, err := scanDocument(s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, reportqa.Errorf(reportqa.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter reportqa.DocumentFilter) ([]*reportqa.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CompanyName != nil {
		query.WriteString(" AND company_name = ?")
		args = append(args, *filter.CompanyName)
	}
	if filter.FilePath != nil {
		query.WriteString(" AND file_path = ?")
		args = append(args, *filter.FilePath)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*reportqa.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document and its chunks.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return reportqa.Errorf(reportqa.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByFilePath removes all documents extracted from a file.
func (s *DocumentService) DeleteDocumentsByFilePath(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE file_path = ?", path)
	return err
}
