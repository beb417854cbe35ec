package main_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/reportqa"
	main "github.com/fwojciec/reportqa/cmd/reportqa"
	"github.com/fwojciec/reportqa/mock"
	"github.com/fwojciec/reportqa/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestDeps(indexer reportqa.Indexer) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Indexer: indexer,
	}, stdout, stderr
}

// echoIndexer answers every question with "<company>: <question>".
func echoIndexer(built *[]string) *mock.Indexer {
	return &mock.Indexer{
		BuildIndexFn: func(_ context.Context, c *reportqa.Company) (reportqa.Index, error) {
			*built = append(*built, c.Name)
			return &mock.Index{
				QueryEngineFn: func() reportqa.QueryEngine {
					return &mock.QueryEngine{
						QueryFn: func(_ context.Context, q reportqa.Question) (*reportqa.Response, error) {
							return &reportqa.Response{Answer: c.Name + ": " + q.String()}, nil
						},
					}
				},
			}, nil
		},
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("stub"), 0o644))
	}
}

func TestRunCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes a spreadsheet for every report", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFiles(t, input, "A.pdf", "B.pdf", "notes.txt")
		questions := filepath.Join(t.TempDir(), "questions.json")
		require.NoError(t, os.WriteFile(questions, []byte(`["Q1", "Q2"]`), 0o644))
		output := filepath.Join(t.TempDir(), "out.xlsx")

		var built []string
		deps, stdout, stderr := newTestDeps(echoIndexer(&built))
		cmd := &main.RunCmd{Input: input, Output: output}
		cmd.Questions = questions

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stderr.String())
		assert.Equal(t, []string{"A", "B"}, built)
		assert.Contains(t, stdout.String(), "📄: A\n🔍: Q1\n📝: A: Q1\n")
		assert.Contains(t, stdout.String(), "Done!")

		f, err := excelize.OpenFile(output)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(xlsx.SheetName)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, []string{"S.No.", "Company Name", "Question", "Answer"}, rows[0])
		assert.Equal(t, []string{"4", "B", "Q2", "B: Q2"}, rows[4])
	})

	t.Run("quiet suppresses progress", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFiles(t, input, "A.pdf")
		output := filepath.Join(t.TempDir(), "out.xlsx")

		var built []string
		deps, stdout, _ := newTestDeps(echoIndexer(&built))
		cmd := &main.RunCmd{Input: input, Output: output, Quiet: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
		assert.FileExists(t, output)
	})

	t.Run("logs input directory, output path, and row count", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFiles(t, input, "A.pdf", "B.pdf")
		output := filepath.Join(t.TempDir(), "out.xlsx")

		var built []string
		deps, _, _ := newTestDeps(echoIndexer(&built))
		var logs bytes.Buffer
		deps.Logger = slog.New(slog.NewTextHandler(&logs, nil))
		cmd := &main.RunCmd{Input: input, Output: output, Quiet: true}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, logs.String(), `msg="results written"`)
		assert.Contains(t, logs.String(), "input="+input)
		assert.Contains(t, logs.String(), "path="+output)
		assert.Contains(t, logs.String(), fmt.Sprintf("rows=%d", 2*len(reportqa.DefaultQuestions())))
	})

	t.Run("missing output directory fails without creating a file", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFiles(t, input, "A.pdf")
		output := filepath.Join(t.TempDir(), "missing", "out.xlsx")

		var built []string
		deps, _, stderr := newTestDeps(echoIndexer(&built))
		cmd := &main.RunCmd{Input: input, Output: output}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.NoFileExists(t, output)
	})

	t.Run("missing input directory fails", func(t *testing.T) {
		t.Parallel()

		output := filepath.Join(t.TempDir(), "out.xlsx")

		var built []string
		deps, _, _ := newTestDeps(echoIndexer(&built))
		cmd := &main.RunCmd{Input: filepath.Join(t.TempDir(), "nope"), Output: output}

		err := cmd.Run(deps)

		assert.Equal(t, reportqa.ENOTFOUND, reportqa.ErrorCode(err))
		assert.NoFileExists(t, output)
	})

	t.Run("non-text question aborts before indexing", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFiles(t, input, "A.pdf")
		questions := filepath.Join(t.TempDir(), "questions.yaml")
		require.NoError(t, os.WriteFile(questions, []byte("- Q1\n- 123\n"), 0o644))
		output := filepath.Join(t.TempDir(), "out.xlsx")

		var built []string
		deps, _, stderr := newTestDeps(echoIndexer(&built))
		cmd := &main.RunCmd{Input: input, Output: output}
		cmd.Questions = questions

		err := cmd.Run(deps)

		assert.Equal(t, reportqa.EINVALID, reportqa.ErrorCode(err))
		assert.Contains(t, stderr.String(), "question 2 is not text")
		assert.Empty(t, built)
		assert.NoFileExists(t, output)
	})
}
