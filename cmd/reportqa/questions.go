package main

import (
	"fmt"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/yaml"
)

// Run executes the questions command.
func (c *QuestionsCmd) Run(deps *Dependencies) error {
	questions, err := c.QuestionFlags.Load()
	if err == nil && !c.AllowNonText {
		err = questions.Validate()
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reportqa.ErrorMessage(err))
		return err
	}

	if c.YAML {
		data, err := yaml.MarshalQuestions(questions)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", reportqa.ErrorMessage(err))
			return err
		}
		_, err = deps.Stdout.Write(data)
		return err
	}

	for i, q := range questions {
		if q.IsText() {
			fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, q.String())
		} else {
			fmt.Fprintf(deps.Stdout, "%d. %s (%T)\n", i+1, q.String(), q.Value)
		}
	}
	return nil
}
