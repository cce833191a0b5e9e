package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsync"
	"github.com/fwojciec/docsync/fs"
	"github.com/fwojciec/docsync/mkdocs"
	locslog "github.com/fwojciec/docsync/slog"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	cfg, err := mkdocs.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	pagePath := filepath.Join(cfg.DocsPath(), c.Page)
	page, err := os.ReadFile(pagePath)
	if err != nil {
		return fmt.Errorf("read page %s: %w", pagePath, err)
	}

	readme := locslog.NewLoggingReadmeSource(fs.NewReadme(cfg.ReadmePath()), deps.Logger)
	hook := mkdocs.NewHook(readme, deps.Logger)
	hook.Normalize = c.Normalize

	out := hook.OnPageMarkdown(deps.Ctx, string(page), c.Page)

	if c.Output == "" {
		_, err = io.WriteString(deps.Stdout, out)
		return err
	}
	if err := deps.Writer.WritePage(deps.Ctx, c.Output, out); err != nil {
		return fmt.Errorf("write page %s: %w", c.Output, err)
	}
	fmt.Fprintf(deps.Stderr, "wrote %s\n", c.Output)
	return nil
}
