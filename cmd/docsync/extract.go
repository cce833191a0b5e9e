package main

import (
	"fmt"

	"github.com/fwojciec/docsync"
	"github.com/fwojciec/docsync/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	content, err := fs.NewReadme(c.Readme).ReadReadme(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, docsync.FormatReadme(docsync.ExtractReadme(content)))
	return nil
}
