package mkdocs

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/docsync"
)

// DefaultIndexPage is the docs page that receives README content.
const DefaultIndexPage = "index.md"

// Hook runs docsync's transforms over MkDocs pages before rendering.
type Hook struct {
	Readme docsync.ReadmeSource
	Logger *slog.Logger

	// IndexPage is the page, relative to docs_dir, that gets the README
	// headline and features. Defaults to DefaultIndexPage.
	IndexPage string

	// Normalize adds markdown hard breaks to prose lines of every page.
	Normalize bool
}

// NewHook creates a Hook that syncs README content into the index page.
func NewHook(readme docsync.ReadmeSource, logger *slog.Logger) *Hook {
	return &Hook{
		Readme:    readme,
		Logger:    logger,
		IndexPage: DefaultIndexPage,
	}
}

// OnPageMarkdown transforms the markdown of the page at srcPath.
// README failures never fail the build: they are logged and the page is
// left without README content.
func (h *Hook) OnPageMarkdown(ctx context.Context, markdown, srcPath string) string {
	if filepath.ToSlash(srcPath) == h.indexPage() {
		markdown = h.syncReadme(ctx, markdown, srcPath)
	}
	if h.Normalize {
		markdown = docsync.NormalizeLineBreaks(markdown)
	}
	return markdown
}

func (h *Hook) syncReadme(ctx context.Context, markdown, srcPath string) string {
	readme, err := h.Readme.ReadReadme(ctx)
	if err != nil {
		level := slog.LevelError
		if docsync.ErrorCode(err) == docsync.ENOTFOUND {
			level = slog.LevelWarn
		}
		h.Logger.Log(ctx, level, "skipping README sync",
			"page", srcPath,
			"err", err,
		)
		return markdown
	}
	return docsync.ApplyReadme(markdown, docsync.ExtractReadme(readme))
}

func (h *Hook) indexPage() string {
	if h.IndexPage == "" {
		return DefaultIndexPage
	}
	return filepath.ToSlash(h.IndexPage)
}
