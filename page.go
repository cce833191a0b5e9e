package docsync

import "context"

// PageWriter persists a generated docs page.
type PageWriter interface {
	// WritePage writes content to the page at path, replacing it.
	WritePage(ctx context.Context, path, content string) error
}
