package reportqa

import (
	"context"
	"time"
)

// Document represents the extracted text of a company's report.
type Document struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	FilePath    string    `json:"filePath"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	PageCount   int       `json:"pageCount"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.CompanyName == "" {
		return Errorf(EINVALID, "document company name required")
	}
	if d.FilePath == "" {
		return Errorf(EINVALID, "document file path required")
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and all associated chunks.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByFilePath removes all documents extracted from a file.
	DeleteDocumentsByFilePath(ctx context.Context, path string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string `json:"id"`
	CompanyName *string `json:"companyName"`
	FilePath    *string `json:"filePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
