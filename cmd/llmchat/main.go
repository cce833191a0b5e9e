package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsync"
	"github.com/fwojciec/docsync/gemini"
	"github.com/fwojciec/docsync/openai"
	locslog "github.com/fwojciec/docsync/slog"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the interactive session.
	Stdin io.Reader

	// Dotenv files consulted for flag values. Missing files are skipped.
	EnvFiles []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:    os.Stdin,
		EnvFiles: []string{".env"},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmchat"),
		kong.Description("Chat with a local OpenAI-compatible LLM server"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(dotenvLoader, m.EnvFiles...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("session", uuid.NewString())

	cfg := cli.ChatConfig()

	chatter, err := newChatter(ctx, cli.Provider, cfg)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   m.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Chatter: locslog.NewLoggingChatter(chatter, logger),
	}

	cmd := &ChatCmd{
		Message: cli.Message,
		Config:  cfg,
	}

	return cmd.Run(deps)
}

func newChatter(ctx context.Context, provider string, cfg docsync.ChatConfig) (docsync.Chatter, error) {
	if provider != ProviderGemini {
		return openai.NewClient(cfg), nil
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini provider needs --api-key or GEMINI_API_KEY. Get a key at https://aistudio.google.com/apikey")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != docsync.DefaultBaseURL {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return gemini.NewChatter(client), nil
}
