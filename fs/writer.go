package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsync"
)

// Ensure Writer implements docsync.PageWriter at compile time.
var _ docsync.PageWriter = (*Writer)(nil)

// Writer writes docs pages below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer. Relative page paths resolve against
// baseDir; absolute paths are used as given.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes content to path. The file is written next to its final
// location and renamed into place so readers never see a partial page.
func (w *Writer) WritePage(ctx context.Context, path, content string) error {
	if path == "" {
		return docsync.Errorf(docsync.EINVALID, "page path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := path
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(w.baseDir, path)
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmpPath := fullPath + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
