package docsync

// Renderer converts Markdown to HTML.
type Renderer interface {
	// Render transforms Markdown content into HTML.
	Render(markdown string) (string, error)
}
