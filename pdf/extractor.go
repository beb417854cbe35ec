// Package pdf extracts plain text from PDF reports.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/reportqa"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements reportqa.TextExtractor at compile time.
var _ reportqa.TextExtractor = (*Extractor)(nil)

// Extractor implements reportqa.TextExtractor using ledongthuc/pdf.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPages returns the plain text of every page.
func (e *Extractor) ExtractPages(ctx context.Context, path string) (pages []*reportqa.Page, err error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, reportqa.Errorf(reportqa.ENOTFOUND, "report %q not found", path)
	}

	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = reportqa.Errorf(reportqa.EINVALID, "malformed PDF %q: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, reportqa.Errorf(reportqa.EINVALID, "cannot open PDF %q: %v", path, err)
	}
	defer f.Close()

	n := r.NumPage()
	pages = make([]*reportqa.Page, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := &reportqa.Page{Number: i}
		p := r.Page(i)
		if !p.V.IsNull() {
			text, err := p.GetPlainText(nil)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i, err)
			}
			page.Text = NormalizeText(text)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// NormalizeText collapses runs of spaces and tabs, trims each line, and drops
// blank lines.
func NormalizeText(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
