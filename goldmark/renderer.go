// Package goldmark provides a docsync.Renderer built on goldmark.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/docsync"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements docsync.Renderer at compile time.
var _ docsync.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML the way MkDocs pages are written:
// GitHub-flavoured tables and raw HTML passthrough.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render transforms Markdown content into HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
