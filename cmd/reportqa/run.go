package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/batch"
	"github.com/fwojciec/reportqa/fs"
	"github.com/fwojciec/reportqa/xlsx"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	questions, err := c.QuestionFlags.Load()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reportqa.ErrorMessage(err))
		return err
	}

	source := fs.NewDocumentSource(c.Input)
	sink := xlsx.NewSink(c.Output)
	driver := &batch.Driver{
		Source:       source,
		Indexer:      deps.Indexer,
		Questions:    questions,
		Sink:         sink,
		AllowNonText: c.AllowNonText,
	}

	var out io.Writer = deps.Stdout
	if c.Quiet {
		out = io.Discard
	}

	table, err := driver.Run(deps.Ctx, batch.PrintProgress(out))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reportqa.ErrorMessage(err))
		return err
	}

	deps.Logger.Info("results written", "input", source.Dir(), "path", sink.Path(), "rows", table.Len())
	return nil
}
