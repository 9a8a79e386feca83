package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linknote"
	"github.com/fwojciec/linknote/capture"
	"github.com/fwojciec/linknote/gemini"
	lhttp "github.com/fwojciec/linknote/http"
	"github.com/fwojciec/linknote/notion"
	lopenai "github.com/fwojciec/linknote/openai"
	"github.com/fwojciec/linknote/opengraph"
	"github.com/fwojciec/linknote/readability"
	"github.com/fwojciec/linknote/rod"
	lslog "github.com/fwojciec/linknote/slog"
	"github.com/fwojciec/linknote/sqlite"
	"github.com/fwojciec/linknote/telegram"
	"github.com/fwojciec/linknote/trafilatura"
	lyoutube "github.com/fwojciec/linknote/youtube"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/jomei/notionapi"
	openai "github.com/openai/openai-go/v3"
	oaioption "github.com/openai/openai-go/v3/option"
	gapioption "google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Secrets may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the local link archive.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LinkService linknote.LinkService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linknote"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linknote --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LINKNOTE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.LinkService = sqlite.NewLinkService(m.DB)
	deps.Links = m.LinkService

	// The capture pipeline is only wired for commands that capture links.
	if cmd == "run" || cmd == "capture" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))

		handler, cleanup, err := m.buildHandler(ctx, cli, logger, stderr)
		if err != nil {
			return err
		}
		defer cleanup()
		deps.Handler = handler

		if cmd == "run" {
			token, err := requireEnv("TG_API_KEY", stderr, "Get a bot token from @BotFather on Telegram")
			if err != nil {
				return err
			}
			api, err := tgbotapi.NewBotAPI(token)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your TG_API_KEY is valid")
				return fmt.Errorf("failed to connect to Telegram: %w", err)
			}
			extractors := linknote.URLExtractors{
				&linknote.ForwardExtractor{},
				&linknote.TextExtractor{},
			}
			deps.Bot = telegram.NewBot(api, extractors, handler, logger)
		}
	}

	return kongCtx.Run(deps)
}

// buildHandler wires the capture pipeline: page fetcher, extractors,
// analyzer, fetcher chain and stores. The returned cleanup function
// releases the page fetcher.
func (m *Main) buildHandler(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (*capture.Handler, func(), error) {
	var fetcher linknote.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = lhttp.NewFetcher(lhttp.WithLimiter(lhttp.NewDomainLimiter(1.0)))
	}
	fetcher = lslog.NewLoggingFetcher(fetcher, logger)
	cleanup := func() { _ = fetcher.Close() }

	extractor := linknote.MultiExtractor{
		trafilatura.NewExtractor(),
		readability.NewExtractor(),
		opengraph.NewExtractor(),
	}

	analyzer, err := m.buildAnalyzer(ctx, cli.Analyzer, stderr)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	youtubeKey, err := requireEnv("YOUTUBE_API_KEY", stderr, "Create an API key in the Google Cloud console")
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	youtubeSvc, err := youtube.NewService(ctx, gapioption.WithAPIKey(youtubeKey))
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to connect to the YouTube API: %w", err)
	}

	notionKey, err := requireEnv("NOTION_API_KEY", stderr, "Create an integration at https://www.notion.so/my-integrations")
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	notionDB, err := requireEnv("NOTION_DATABASE_ID", stderr, "Share a database with your integration and copy its ID")
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	chain := capture.Chain{
		lslog.NewLoggingInfoFetcher(&capture.Telegram{
			Fetcher:   fetcher,
			Extractor: extractor,
			Analyzer:  analyzer,
			Logger:    logger,
		}, "telegram", logger),
		lslog.NewLoggingInfoFetcher(&capture.YouTube{
			Videos:   lyoutube.NewVideoService(youtubeSvc),
			Analyzer: analyzer,
		}, "youtube", logger),
		lslog.NewLoggingInfoFetcher(&capture.Generic{
			Fetcher:   fetcher,
			Extractor: extractor,
			Analyzer:  analyzer,
			Logger:    logger,
		}, "generic", logger),
	}

	store := linknote.MultiStore{
		notion.NewStore(notionapi.NewClient(notionapi.Token(notionKey)), notionDB),
		m.LinkService,
	}

	return &capture.Handler{
		Fetcher: chain,
		Store:   store,
		Logger:  logger,
	}, cleanup, nil
}

func (m *Main) buildAnalyzer(ctx context.Context, backend string, stderr io.Writer) (linknote.TextAnalyzer, error) {
	switch backend {
	case "openai":
		key, err := requireEnv("OPENAI_API_KEY", stderr, "Get an API key at https://platform.openai.com/api-keys")
		if err != nil {
			return nil, err
		}
		return lopenai.NewAnalyzer(openai.NewClient(oaioption.WithAPIKey(key))), nil
	default:
		key, err := requireEnv("GEMINI_API_KEY", stderr, "Get an API key at https://aistudio.google.com/apikey")
		if err != nil {
			return nil, err
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to the Gemini API: %w", err)
		}
		return gemini.NewAnalyzer(client), nil
	}
}

func requireEnv(name string, stderr io.Writer, hint string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		fmt.Fprintf(stderr, "Hint: %s\n", hint)
		return "", fmt.Errorf("%s environment variable not set", name)
	}
	return value, nil
}

func defaultDBPath() string {
	if path := os.Getenv("LINKNOTE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "linknote.db"
	}
	dir := filepath.Join(home, ".linknote")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "linknote.db")
}
