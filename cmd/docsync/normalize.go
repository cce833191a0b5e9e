package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/docsync"
)

// Run executes the normalize command.
func (c *NormalizeCmd) Run(deps *Dependencies) error {
	var (
		data []byte
		err  error
	)
	if c.File == "" {
		data, err = io.ReadAll(deps.Stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return fmt.Errorf("read markdown: %w", err)
	}

	out := docsync.NormalizeLineBreaks(string(data))

	if c.HTML {
		out, err = deps.Renderer.Render(out)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}

	_, err = io.WriteString(deps.Stdout, out)
	return err
}
