package main

import (
	"context"
	"io"

	"github.com/linegrep/linegrep"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Loader     linegrep.DocumentLoader
	Searcher   linegrep.Searcher
	IgnoreCase bool
}

// CLI defines the command-line interface structure for Kong. The tool has
// exactly one operation, so the positional arguments live on the root.
type CLI struct {
	Query string `arg:"" help:"Substring to search for"`
	Path  string `arg:"" help:"Path of the file to search"`
}
