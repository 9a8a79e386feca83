package main

import "fmt"

// Run executes the run command: long-poll Telegram until interrupted.
func (c *RunCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Listening for messages. Press Ctrl-C to stop.")
	return deps.Bot.Run(deps.Ctx)
}
