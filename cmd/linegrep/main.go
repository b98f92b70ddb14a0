package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/linegrep/linegrep/fs"
	"github.com/linegrep/linegrep/search"
	lgslog "github.com/linegrep/linegrep/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv resolves environment variable lookups. Defaults to os.Getenv;
	// set before calling Run() to override in tests.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Resolve environment-driven settings once, up front. Nothing below
	// this point consults the process environment.
	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		IgnoreCase: m.Getenv("CASE_INSENSITIVE") != "",
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linegrep"),
		kong.Description("Print the lines of a file that contain a substring."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Parse arguments before wiring services so that argument errors
	// never touch the filesystem.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Searcher = search.New()
	deps.Loader = fs.NewLoader()

	// Debug logging goes to stderr so stdout stays exactly the matched lines.
	if m.Getenv("LINEGREP_DEBUG") != "" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Searcher = lgslog.NewLoggingSearcher(deps.Searcher, logger)
		deps.Loader = lgslog.NewLoggingLoader(deps.Loader, logger)
	}

	return kongCtx.Run(deps)
}
