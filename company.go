package reportqa

import (
	"context"
	"path/filepath"
	"strings"
)

// ReportExt is the file suffix a report must carry to be processed.
// Matching is case-sensitive.
const ReportExt = ".pdf"

// Company represents a single annual report in the input directory.
type Company struct {
	// Name is the display name: the report filename without its extension.
	Name string `json:"name"`

	// Path is the full path to the report file.
	Path string `json:"path"`
}

// NewCompany derives a Company from a report filename inside dir.
func NewCompany(dir, filename string) *Company {
	return &Company{
		Name: strings.TrimSuffix(filename, filepath.Ext(filename)),
		Path: filepath.Join(dir, filename),
	}
}

// Validate returns an error if the company contains invalid fields.
func (c *Company) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "company name required")
	}
	if c.Path == "" {
		return Errorf(EINVALID, "company report path required")
	}
	return nil
}

// IsReport reports whether filename qualifies as an annual report.
func IsReport(filename string) bool {
	return strings.HasSuffix(filename, ReportExt)
}

// DocumentSource lists the reports to be processed.
type DocumentSource interface {
	// ListCompanies returns qualifying reports in ascending filename order.
	// Returns ENOTFOUND if the input directory does not exist.
	ListCompanies(ctx context.Context) ([]*Company, error)
}
