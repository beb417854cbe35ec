// Package batch runs every question against every report and collects the
// answers into a single results table.
package batch

import (
	"context"
	"fmt"

	"github.com/fwojciec/reportqa"
)

// Driver orchestrates the companies × questions loop. Execution is strictly
// sequential: one index is built and queried at a time.
type Driver struct {
	Source    reportqa.DocumentSource
	Indexer   reportqa.Indexer
	Questions reportqa.QuestionList
	Sink      reportqa.ResultSink

	// AllowNonText passes non-text questions to the engine instead of
	// rejecting the list before any work starts.
	AllowNonText bool
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type     ProgressType
	Company  *reportqa.Company
	Question reportqa.Question
	Row      *reportqa.ResultRow
	Total    int // companies
	Index    int // 1-based company index
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompanyStarted
	ProgressQuestionAsked
	ProgressQuestionAnswered
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes all reports and writes the results once at the end. Any
// error aborts the run before the sink is called, so nothing is written.
func (d *Driver) Run(ctx context.Context, progress ProgressFunc) (*reportqa.ResultTable, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	if err := d.validateQuestions(); err != nil {
		return nil, err
	}

	companies, err := d.Source.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	progress(ProgressEvent{Type: ProgressStarted, Total: len(companies)})

	table := reportqa.NewResultTable()
	for i, company := range companies {
		progress(ProgressEvent{Type: ProgressCompanyStarted, Company: company, Total: len(companies), Index: i + 1})
		if err := d.runCompany(ctx, company, table, func(e ProgressEvent) {
			e.Total, e.Index = len(companies), i+1
			progress(e)
		}); err != nil {
			return nil, err
		}
	}

	if err := d.Sink.WriteResults(ctx, table.Rows()); err != nil {
		return nil, fmt.Errorf("write results: %w", err)
	}
	progress(ProgressEvent{Type: ProgressFinished, Total: len(companies)})

	return table, nil
}

func (d *Driver) validateQuestions() error {
	if len(d.Questions) == 0 {
		return reportqa.Errorf(reportqa.EINVALID, "question list is empty")
	}
	if d.AllowNonText {
		return nil
	}
	return d.Questions.Validate()
}

func (d *Driver) runCompany(ctx context.Context, company *reportqa.Company, table *reportqa.ResultTable, progress ProgressFunc) (err error) {
	idx, err := d.Indexer.BuildIndex(ctx, company)
	if err != nil {
		return fmt.Errorf("index %s: %w", company.Name, err)
	}
	defer func() {
		if cerr := idx.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close index %s: %w", company.Name, cerr)
		}
	}()

	engine := idx.QueryEngine()
	for _, q := range d.Questions {
		if err := ctx.Err(); err != nil {
			return err
		}
		progress(ProgressEvent{Type: ProgressQuestionAsked, Company: company, Question: q})

		resp, err := engine.Query(ctx, q)
		if err != nil {
			return fmt.Errorf("query %s %q: %w", company.Name, q.String(), err)
		}

		row := table.Append(company.Name, q, resp.Answer)
		progress(ProgressEvent{Type: ProgressQuestionAnswered, Company: company, Question: q, Row: row})
	}
	return nil
}
