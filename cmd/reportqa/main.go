package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/reportqa"
	"github.com/fwojciec/reportqa/gemini"
	"github.com/fwojciec/reportqa/lru"
	"github.com/fwojciec/reportqa/pdf"
	"github.com/fwojciec/reportqa/rag"
	rqslog "github.com/fwojciec/reportqa/slog"
	"github.com/fwojciec/reportqa/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Closes the log file, if any.
	closeLog func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.DB != nil {
		err = m.DB.Close()
	}
	if m.closeLog != nil {
		if cerr := m.closeLog(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("reportqa"),
		kong.Description("Ask a fixed list of questions of every PDF annual report in a directory."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'reportqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	logCfg := rqslog.DefaultConfig()
	logCfg.Level = cli.LogLevel
	logCfg.FilePath = cli.LogFile
	logger, closeLog, err := rqslog.New(logCfg, stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	m.closeLog = closeLog
	deps.Logger = logger

	var engine *EngineFlags
	switch strings.Fields(kongCtx.Command())[0] {
	case "run":
		engine = &cli.Run.Engine
	case "ask":
		engine = &cli.Ask.Engine
	}

	if engine != nil {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set REPORTQA_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Indexer, err = newIndexer(client, m.DB, engine, logger)
		if err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting; the local tokenizer does not
// know every generation model.
const tokenizerModel = "gemini-2.5-flash"

// questionCacheSize bounds the number of cached question embeddings.
const questionCacheSize = 256

// newIndexer wires the extraction, storage, and Gemini backends into a
// logging rag.Indexer.
func newIndexer(client *genai.Client, db *sqlite.DB, f *EngineFlags, logger *slog.Logger) (reportqa.Indexer, error) {
	cfg := f.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	counter, err := gemini.NewTokenCounter(tokenizerModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	limiter := gemini.NewLimiter(f.RPS)
	docEmbedder := gemini.NewEmbedder(client, cfg.EmbeddingModelID, gemini.TaskRetrievalDocument, limiter)
	queryEmbedder, err := lru.NewEmbedder(
		rqslog.NewLoggingEmbedder(gemini.NewEmbedder(client, cfg.EmbeddingModelID, gemini.TaskRetrievalQuery, limiter), logger),
		questionCacheSize,
	)
	if err != nil {
		return nil, err
	}

	ix := &rag.Indexer{
		Extractor: rqslog.NewLoggingExtractor(pdf.NewExtractor(), logger),
		Chunker: &reportqa.Chunker{
			Counter:   counter,
			MaxTokens: cfg.ChunkTokens,
			Overlap:   cfg.ChunkOverlap,
		},
		Embedder:      rqslog.NewLoggingEmbedder(docEmbedder, logger),
		QueryEmbedder: queryEmbedder,
		Documents:     sqlite.NewDocumentService(db),
		Chunks:        sqlite.NewChunkService(db),
		Search:        sqlite.NewSearchService(db),
		Generator:     gemini.NewGenerator(client, cfg.LanguageModelID, limiter),
		Config:        cfg,
		DedupeFPRate:  rag.DefaultDedupeFPRate,
		KeepIndexes:   f.KeepIndexes,
	}
	return rqslog.NewLoggingIndexer(ix, logger), nil
}
