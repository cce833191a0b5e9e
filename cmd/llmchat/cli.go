package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsync"
)

// Providers selectable with --provider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Chatter docsync.Chatter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `name:"base-url" env:"LLMCHAT_BASE_URL" default:"http://localhost:8080" help:"Server base URL"`
	APIKey      string        `name:"api-key" env:"LLMCHAT_API_KEY" help:"Bearer token (optional)"`
	Model       string        `short:"m" env:"LLMCHAT_MODEL" help:"Model name (default: choose from the server's list)"`
	Temperature float32       `short:"t" default:"0.7" help:"Sampling temperature"`
	MaxTokens   int           `name:"max-tokens" default:"1000" help:"Maximum tokens in the reply"`
	Timeout     time.Duration `default:"60s" help:"Request timeout"`
	Provider    string        `enum:"openai,gemini" default:"openai" help:"API flavour: openai or gemini"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	Message     []string      `arg:"" optional:"" help:"Message to send; starts an interactive session when empty"`
}

// ChatConfig returns the chat configuration selected by the flags.
func (c *CLI) ChatConfig() docsync.ChatConfig {
	return docsync.ChatConfig{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Timeout:     c.Timeout,
	}
}

// ChatCmd sends a single message or runs an interactive session.
type ChatCmd struct {
	Message []string
	Config  docsync.ChatConfig
}
