package reportqa

import "context"

// Column headers of the results table, in output order.
const (
	ColumnSeqNo    = "S.No."
	ColumnCompany  = "Company Name"
	ColumnQuestion = "Question"
	ColumnAnswer   = "Answer"
)

// Columns returns the results table header row.
func Columns() []string {
	return []string{ColumnSeqNo, ColumnCompany, ColumnQuestion, ColumnAnswer}
}

// ResultRow is one answered (company, question) pair.
type ResultRow struct {
	SeqNo       int      `json:"seqNo"`
	CompanyName string   `json:"companyName"`
	Question    Question `json:"question"`
	Answer      string   `json:"answer"`
}

// ResultTable is an append-only, ordered sequence of result rows.
// SeqNo is assigned on append and always equals the row's 1-based position.
type ResultTable struct {
	rows []*ResultRow
}

// NewResultTable returns an empty table.
func NewResultTable() *ResultTable {
	return &ResultTable{}
}

// Append adds a row and returns it.
func (t *ResultTable) Append(companyName string, q Question, answer string) *ResultRow {
	row := &ResultRow{
		SeqNo:       len(t.rows) + 1,
		CompanyName: companyName,
		Question:    q,
		Answer:      answer,
	}
	t.rows = append(t.rows, row)
	return row
}

// Len returns the number of rows.
func (t *ResultTable) Len() int {
	return len(t.rows)
}

// Rows returns the rows in order. The returned slice is a copy.
func (t *ResultTable) Rows() []*ResultRow {
	out := make([]*ResultRow, len(t.rows))
	copy(out, t.rows)
	return out
}

// ResultSink persists a complete results table.
type ResultSink interface {
	// WriteResults writes all rows in a single operation, replacing any
	// existing output. Returns ENOTFOUND if the destination directory does
	// not exist.
	WriteResults(ctx context.Context, rows []*ResultRow) error
}
