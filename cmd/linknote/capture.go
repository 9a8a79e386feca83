package main

import (
	"fmt"

	"github.com/fwojciec/linknote"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	if err := deps.Handler.Handle(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linknote.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", c.URL)
	return nil
}
