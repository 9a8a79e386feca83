package main

import (
	"fmt"

	"github.com/fwojciec/linknote"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	links, err := deps.Links.FindLinks(deps.Ctx, linknote.LinkFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linknote.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "No links captured yet. Use 'linknote capture' or send one to the bot.")
		return nil
	}

	for _, l := range links {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", l.CapturedAt.Format("2006-01-02 15:04"), l.ID, l.Title, l.URL)
	}

	return nil
}
