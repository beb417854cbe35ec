package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/reportqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) (err error) {
	defer func() {
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", reportqa.ErrorMessage(err))
		}
	}()

	company := reportqa.NewCompany(filepath.Dir(c.File), filepath.Base(c.File))
	idx, err := deps.Indexer.BuildIndex(deps.Ctx, company)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := idx.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	resp, err := idx.QueryEngine().Query(deps.Ctx, reportqa.NewQuestion(c.Question))
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, resp.Answer)
	if c.Sources && len(resp.Sources) > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, reportqa.FormatSources(resp.Sources))
	}
	return nil
}
