package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Indexer reportqa.Indexer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" env:"REPORTQA_DB" default:":memory:" help:"SQLite database path for extracted chunks"`
	LogLevel string `name:"log-level" env:"REPORTQA_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFile  string `name:"log-file" env:"REPORTQA_LOG_FILE" help:"Write logs to a rotating file instead of stderr"`

	Run       RunCmd       `cmd:"" help:"Ask every question of every report and write a spreadsheet"`
	Questions QuestionsCmd `cmd:"" help:"Print the effective question list"`
	Ask       AskCmd       `cmd:"" help:"Ask a single question of one report"`
}

// EngineFlags configures the indexing and query engine.
type EngineFlags struct {
	LLM            string  `name:"llm" env:"REPORTQA_LLM" default:"gemini-2.5-flash" help:"Language model used to answer questions"`
	EmbeddingModel string  `name:"embedding-model" env:"REPORTQA_EMBEDDING_MODEL" default:"gemini-embedding-001" help:"Model used to embed report chunks and questions"`
	TopK           int     `name:"top-k" default:"5" help:"Excerpts retrieved per question"`
	ChunkTokens    int     `name:"chunk-tokens" default:"512" help:"Maximum tokens per excerpt"`
	ChunkOverlap   int     `name:"chunk-overlap" default:"40" help:"Words shared by consecutive excerpts"`
	MinScore       float32 `name:"min-score" default:"0" help:"Discard excerpts below this similarity"`
	RPS            float64 `name:"rps" env:"REPORTQA_RPS" default:"0" help:"Maximum Gemini requests per second (0 = unlimited)"`
	KeepIndexes    bool    `name:"keep-indexes" help:"Keep extracted chunks in the database after each report"`
}

// Config returns the engine configuration selected by the flags.
func (f *EngineFlags) Config() reportqa.Config {
	cfg := reportqa.DefaultConfig()
	cfg.LanguageModelID = f.LLM
	cfg.EmbeddingModelID = f.EmbeddingModel
	cfg.TopK = f.TopK
	cfg.ChunkTokens = f.ChunkTokens
	cfg.ChunkOverlap = f.ChunkOverlap
	cfg.MinScore = f.MinScore
	return cfg
}

// QuestionFlags selects the question list.
type QuestionFlags struct {
	Questions    string `short:"q" name:"questions" env:"REPORTQA_QUESTIONS" help:"YAML or JSON question file (default: built-in list). Quote entries such as yes, no, or 2024 to keep them as text"`
	AllowNonText bool   `name:"allow-non-text" help:"Ask non-text entries as text instead of rejecting the list"`
}

// Load returns the question list from the file, or the built-in list.
func (f *QuestionFlags) Load() (reportqa.QuestionList, error) {
	if f.Questions == "" {
		return reportqa.DefaultQuestions(), nil
	}
	return yaml.LoadQuestions(f.Questions)
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Input  string `short:"i" name:"input" env:"REPORTQA_INPUT" default:"annual_reports" help:"Directory of PDF annual reports"`
	Output string `short:"o" name:"output" env:"REPORTQA_OUTPUT" default:"AI_Query_ALL_COMPANIES.xlsx" help:"Output spreadsheet path"`
	Quiet  bool   `name:"quiet" help:"Do not print progress"`

	QuestionFlags `embed:""`

	Engine EngineFlags `embed:""`
}

// QuestionsCmd is the "questions" subcommand.
type QuestionsCmd struct {
	YAML bool `name:"yaml" help:"Print the list as a YAML question file"`

	QuestionFlags `embed:""`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	File     string `arg:"" help:"Path to a PDF report"`
	Question string `arg:"" help:"Question to ask about the report"`
	Sources  bool   `short:"s" help:"Print the excerpts used to answer"`

	Engine EngineFlags `embed:""`
}
