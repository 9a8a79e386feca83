package main

import (
	"context"
	"io"

	"github.com/fwojciec/linknote"
	"github.com/fwojciec/linknote/telegram"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Links   linknote.LinkService
	Handler telegram.Handler
	Bot     *telegram.Bot
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyzer string `default:"gemini" enum:"gemini,openai" help:"Text analyzer backend (gemini or openai)"`
	Browser  bool   `help:"Render pages in a headless browser instead of plain HTTP"`

	Run     RunCmd     `cmd:"" help:"Start the Telegram bot"`
	Capture CaptureCmd `cmd:"" help:"Capture a single link from the command line"`
	List    ListCmd    `cmd:"" help:"List locally archived links"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct{}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URL string `arg:"" help:"Link to capture"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit  int `short:"n" default:"20" help:"Maximum number of links to show"`
	Offset int `help:"Number of links to skip"`
}
