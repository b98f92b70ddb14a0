package main

import (
	"fmt"

	"github.com/linegrep/linegrep"
)

// Run executes the search: validate the configuration, load the document,
// filter its lines, and print each match to stdout in source order.
func (c *CLI) Run(deps *Dependencies) error {
	cfg := linegrep.Config{
		Query:      c.Query,
		Path:       c.Path,
		IgnoreCase: deps.IgnoreCase,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linegrep.ErrorMessage(err))
		return err
	}

	doc, err := deps.Loader.LoadDocument(deps.Ctx, cfg.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linegrep.ErrorMessage(err))
		return err
	}

	for _, line := range deps.Searcher.Search(cfg.Query, doc.Text, cfg.IgnoreCase) {
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
