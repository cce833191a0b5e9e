// Package fs provides file-based access to project and docs files.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/docsync"
)

// Ensure Readme implements docsync.ReadmeSource at compile time.
var _ docsync.ReadmeSource = (*Readme)(nil)

// Readme reads a README file from disk.
type Readme struct {
	path string
}

// NewReadme creates a Readme that reads the file at path.
func NewReadme(path string) *Readme {
	return &Readme{path: path}
}

// Path returns the README location.
func (r *Readme) Path() string {
	return r.path
}

// ReadReadme returns the file contents.
// Returns ENOTFOUND if the file does not exist.
func (r *Readme) ReadReadme(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", docsync.Errorf(docsync.ENOTFOUND, "README.md not found at %s", r.path)
	} else if err != nil {
		return "", err
	}

	return string(data), nil
}
