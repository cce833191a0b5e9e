package mock

import (
	"context"

	"github.com/fwojciec/docsync"
)

var _ docsync.ReadmeSource = (*ReadmeSource)(nil)

// ReadmeSource is a mock implementation of docsync.ReadmeSource.
type ReadmeSource struct {
	ReadReadmeFn func(ctx context.Context) (string, error)
}

func (s *ReadmeSource) ReadReadme(ctx context.Context) (string, error) {
	return s.ReadReadmeFn(ctx)
}
