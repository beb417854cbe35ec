// Package fs provides file-system access for report discovery and
// atomic output files.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/fwojciec/reportqa"
)

// Ensure DocumentSource implements reportqa.DocumentSource at compile time.
var _ reportqa.DocumentSource = (*DocumentSource)(nil)

// DocumentSource lists PDF reports in a single directory. Subdirectories are
// not descended into.
type DocumentSource struct {
	dir string
}

// NewDocumentSource creates a DocumentSource reading dir.
func NewDocumentSource(dir string) *DocumentSource {
	return &DocumentSource{dir: dir}
}

// Dir returns the directory being scanned.
func (s *DocumentSource) Dir() string {
	return s.dir
}

// ListCompanies returns one company per file with an exact ".pdf" suffix,
// sorted by filename in byte order.
func (s *DocumentSource) ListCompanies(ctx context.Context) ([]*reportqa.Company, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, reportqa.Errorf(reportqa.ENOTFOUND, "input directory %q not found", s.dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	var companies []*reportqa.Company
	for _, name := range names {
		if !reportqa.IsReport(name) {
			continue
		}
		companies = append(companies, reportqa.NewCompany(s.dir, name))
	}
	return companies, nil
}
