package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/yoola"
	"github.com/fwojciec/yoola/bloom"
	"github.com/fwojciec/yoola/desktop"
	"github.com/fwojciec/yoola/fs"
	"github.com/fwojciec/yoola/gemini"
	"github.com/fwojciec/yoola/goquery"
	"github.com/fwojciec/yoola/htmltomarkdown"
	yoolahttp "github.com/fwojciec/yoola/http"
	"github.com/fwojciec/yoola/message"
	"github.com/fwojciec/yoola/readability"
	"github.com/fwojciec/yoola/rod"
	yslog "github.com/fwojciec/yoola/slog"
	"github.com/fwojciec/yoola/sqlite"
	"github.com/fwojciec/yoola/summarize"
	"github.com/fwojciec/yoola/trafilatura"
	"github.com/fwojciec/yoola/view"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin answers confirmation prompts.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("yoola"),
		kong.Description("Find and summarize terms of service"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'yoola --help' to see available commands")
		return yoola.Errorf(yoola.EINVALID, "no command specified")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Logger = logger

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "error: failed to open database at %q: %s\n", m.DBPath, err)
		fmt.Fprintf(stderr, "Hint: Set YOOLA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	settingsService := sqlite.NewSettingsService(m.DB)
	cacheService := sqlite.NewCacheService(m.DB)
	deps.DB = m.DB
	deps.Settings = settingsService

	settings, err := settingsService.FindSettings(ctx)
	if err != nil {
		logger.Warn("reading settings failed, using defaults", "err", err)
		settings = yoola.DefaultSettings()
	}

	var fetcher yoola.Fetcher = yoolahttp.NewFetcher()
	if cli.Browser {
		rf, err := rod.NewFetcher(nil)
		if err != nil {
			fmt.Fprintf(stderr, "error: failed to start browser: %s\n", err)
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer rf.Close()
		fetcher = rf
	}
	fetcher = yslog.NewLoggingFetcher(fetcher, logger)

	summarizer, apiClient, err := m.summarizer(ctx, cli, settings)
	if err != nil {
		logger.Warn("summarizer unavailable", "err", err)
		summarizer = unavailableSummarizer{err: err}
	}

	var presenter yoola.Presenter = view.NewPresenter(stdout, m.Stdin, htmltomarkdown.NewConverter())
	if cmd == "serve" {
		presenter = yslog.NewPresenter(logger)
	}

	detector := goquery.NewDetector()
	deps.Coordinator = &summarize.Coordinator{
		Fetcher:    fetcher,
		Detector:   detector,
		Extractor:  yslog.NewLoggingPageExtractor(newExtractor(cli.Extractor), logger),
		Fallback:   goquery.NewFallbackExtractor(),
		Summarizer: yslog.NewLoggingSummarizer(summarizer, logger),
		Cache:      cacheService,
		Settings:   settingsService,
		Presenter:  presenter,
		Logger:     logger,
	}
	deps.Scanner = &summarize.Scanner{
		Fetcher:     fetcher,
		Detector:    detector,
		Limiter:     summarize.NewDomainLimiter(cli.Scan.RPS),
		Seen:        bloom.NewURLSet(10000, 0.001),
		Settings:    settingsService,
		Concurrency: cli.Scan.Concurrency,
		Logger:      logger,
	}

	router := message.NewRouter(deps.Coordinator, settingsService, logger)
	router.OnSettingsChanged = func(s *yoola.Settings) {
		if apiClient != nil {
			apiClient.SetBaseURL(s.APIBaseURL)
		}
	}
	deps.Router = router

	deps.Clipboard = desktop.NewClipboard()
	deps.Opener = desktop.NewBrowser()
	deps.Writer = fs.NewWriter(cli.Summarize.Out)

	return kongCtx.Run(deps)
}

// summarizer returns the summarizer selected by the aiProvider setting.
// The API client is also returned when it is in use so that base URL changes
// can be applied to it.
func (m *Main) summarizer(ctx context.Context, cli *CLI, settings *yoola.Settings) (yoola.Summarizer, *yoolahttp.SummaryClient, error) {
	if settings.AIProvider == "gemini" {
		if cli.GeminiAPIKey == "" {
			return nil, nil, yoola.Errorf(yoola.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, nil, yoola.Errorf(yoola.EUNAVAILABLE, "failed to connect to Gemini API: %v", err)
		}
		return gemini.NewSummarizer(client, cli.GeminiModel), nil, nil
	}

	client := yoolahttp.NewSummaryClient(settings.APIBaseURL,
		yoolahttp.WithMethod(yoolahttp.Method(cli.APIMethod)),
	)
	return client, client, nil
}

// unavailableSummarizer fails every call with err.
type unavailableSummarizer struct{ err error }

func (s unavailableSummarizer) Summarize(context.Context, *yoola.SummaryRequest) (*yoola.Summary, error) {
	return nil, s.err
}

func newExtractor(name string) yoola.PageExtractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewPageExtractor()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("YOOLA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "yoola.db"
	}
	dir := filepath.Join(home, ".yoola")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "yoola.db")
}
