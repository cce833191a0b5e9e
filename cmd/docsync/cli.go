package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docsync"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Renderer docsync.Renderer
	Writer   docsync.PageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Normalize NormalizeCmd `cmd:"" help:"Add markdown hard breaks to prose lines"`
	Extract   ExtractCmd   `cmd:"" help:"Show the headline and features taken from a README"`
	Sync      SyncCmd      `cmd:"" help:"Run the docs hooks over a page of an MkDocs site"`
}

// NormalizeCmd is the "normalize" subcommand.
type NormalizeCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"Markdown file (default: standard input)"`
	HTML bool   `help:"Render the result to HTML"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Readme string `arg:"" optional:"" default:"README.md" help:"README to read"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Config    string `short:"c" default:"mkdocs.yml" help:"MkDocs configuration file"`
	Page      string `short:"p" default:"index.md" help:"Page to process, relative to docs_dir"`
	Normalize bool   `short:"n" help:"Also add hard breaks to prose lines"`
	Output    string `short:"o" help:"Write the result to this file instead of standard output"`
}
