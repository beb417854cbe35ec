// Package xlsx writes result tables as Excel workbooks.
package xlsx

import (
	"context"
	"fmt"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/fs"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the results.
const SheetName = "Sheet1"

// Ensure Sink implements reportqa.ResultSink at compile time.
var _ reportqa.ResultSink = (*Sink)(nil)

// Sink writes all result rows to a single .xlsx file.
type Sink struct {
	path string
}

// NewSink creates a Sink writing to path.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the output file path.
func (s *Sink) Path() string {
	return s.path
}

// WriteResults writes a header row followed by one row per result.
// The workbook is built in memory and moved into place in one step.
func (s *Sink) WriteResults(ctx context.Context, rows []*reportqa.ResultRow) error {
	out, err := fs.CreateAtomic(s.path)
	if err != nil {
		return err
	}
	defer out.Abort()

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, rows); err != nil {
		return err
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return out.Commit()
}

func writeSheet(f *excelize.File, rows []*reportqa.ResultRow) error {
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	// Question and Answer are wide text columns.
	if err := sw.SetColWidth(3, 3, 50); err != nil {
		return err
	}
	if err := sw.SetColWidth(4, 4, 100); err != nil {
		return err
	}

	header := make([]any, 0, 4)
	for _, c := range reportqa.Columns() {
		header = append(header, c)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []any{
			row.SeqNo,
			row.CompanyName,
			cellValue(row.Question),
			row.Answer,
		}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.SeqNo, err)
		}
	}

	return sw.Flush()
}

// cellValue keeps non-text questions in their native cell type.
func cellValue(q reportqa.Question) any {
	if q.IsText() {
		return q.String()
	}
	switch q.Value.(type) {
	case int, int64, float64, bool:
		return q.Value
	}
	return q.String()
}
