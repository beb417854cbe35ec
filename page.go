package reportqa

import "context"

// Page is the plain text of one page of a report.
type Page struct {
	Number int    `json:"number"` // 1-based
	Text   string `json:"text"`
}

// TextExtractor extracts plain text from a report file.
type TextExtractor interface {
	// ExtractPages returns the text of every page in order.
	// Pages without text are returned with empty Text.
	ExtractPages(ctx context.Context, path string) ([]*Page, error)
}
