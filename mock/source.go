package mock

import (
	"context"

	"github.com/fwojciec/reportqa"
)

var _ reportqa.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of reportqa.DocumentSource.
type DocumentSource struct {
	ListCompaniesFn func(ctx context.Context) ([]*reportqa.Company, error)
}

func (s *DocumentSource) ListCompanies(ctx context.Context) ([]*reportqa.Company, error) {
	return s.ListCompaniesFn(ctx)
}
