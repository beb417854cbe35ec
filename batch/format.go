package batch

import (
	"fmt"
	"io"
)

// PrintProgress returns a ProgressFunc that writes one line per company,
// question, and answer to w, followed by a summary when the run finishes.
func PrintProgress(w io.Writer) ProgressFunc {
	var rows int
	return func(e ProgressEvent) {
		switch e.Type {
		case ProgressCompanyStarted:
			fmt.Fprintf(w, "[%d/%d] %s\n", e.Index, e.Total, e.Company.Name)
		case ProgressQuestionAsked:
			fmt.Fprintf(w, "📄: %s\n🔍: %s\n", e.Company.Name, e.Question.String())
		case ProgressQuestionAnswered:
			rows++
			fmt.Fprintf(w, "📝: %s\n", e.Row.Answer)
		case ProgressFinished:
			fmt.Fprintf(w, "Done! %d rows from %d reports.\n", rows, e.Total)
		}
	}
}
