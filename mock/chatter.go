package mock

import (
	"context"

	"github.com/fwojciec/docsync"
)

var _ docsync.Chatter = (*Chatter)(nil)

// Chatter is a mock implementation of docsync.Chatter.
type Chatter struct {
	ChatFn       func(ctx context.Context, req docsync.ChatRequest) (string, error)
	ListModelsFn func(ctx context.Context) ([]docsync.Model, error)
}

func (c *Chatter) Chat(ctx context.Context, req docsync.ChatRequest) (string, error) {
	return c.ChatFn(ctx, req)
}

func (c *Chatter) ListModels(ctx context.Context) ([]docsync.Model, error) {
	return c.ListModelsFn(ctx)
}
