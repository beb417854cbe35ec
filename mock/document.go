package mock

import (
	"context"

	"github.com/fwojciec/reportqa"
)

var _ reportqa.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of reportqa.DocumentService.
type DocumentService struct {
	CreateDocumentFn            func(ctx context.Context, doc *reportqa.Document) error
	FindDocumentByIDFn          func(ctx context.Context, id string) (*reportqa.Document, error)
	FindDocumentsFn             func(ctx context.Context, filter reportqa.DocumentFilter) ([]*reportqa.Document, error)
	DeleteDocumentFn            func(ctx context.Context, id string) error
	DeleteDocumentsByFilePathFn func(ctx context.Context, path string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *reportqa.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*reportqa.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter reportqa.DocumentFilter) ([]*reportqa.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByFilePath(ctx context.Context, path string) error {
	return s.DeleteDocumentsByFilePathFn(ctx, path)
}
