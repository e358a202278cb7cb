// ABOUTME: CLI entry point for pytask build/test automation helpers
// ABOUTME: Parses flags, resolves the project layout, dispatches to a subcommand

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pytaskio/pytask/internal/console"
	pylog "github.com/pytaskio/pytask/internal/log"
	"github.com/pytaskio/pytask/internal/precommit"
	"github.com/pytaskio/pytask/internal/project"
	"github.com/pytaskio/pytask/internal/pyenv"
	"github.com/pytaskio/pytask/internal/runner"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pytask %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		// The switcher already printed guidance for a missing version;
		// only the exit code is left to signal.
		if !errors.Is(err, pyenv.ErrVersionNotFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run resolves the project layout and dispatches to the subcommand.
func run(args cliArgs) error {
	if args.verbose {
		pylog.SetLevel(pylog.LevelDebug)
	}

	rest := args.remaining()
	if len(rest) == 0 {
		return fmt.Errorf("usage: pytask <switch-python|pre-commit|reports-dir|layout> [args]")
	}

	layout, err := project.Load(project.LayoutFile)
	if err != nil {
		return fmt.Errorf("loading project layout: %w", err)
	}

	ctx := context.Background()
	p := console.NewPrinter(nil, nil)
	r := runner.NewShellRunner()

	switch rest[0] {
	case "switch-python":
		if len(rest) != 2 {
			return fmt.Errorf("usage: pytask switch-python <MAJOR.MINOR>")
		}
		return pyenv.NewSwitcher(r, p).Switch(ctx, rest[1])

	case "pre-commit":
		return precommit.Ensure(ctx, r)

	case "reports-dir":
		if err := layout.EnsureReportsDir(); err != nil {
			return err
		}
		fmt.Println(layout.ReportsDir)
		return nil

	case "layout":
		return printLayout(layout)

	default:
		return fmt.Errorf("unknown subcommand %q: expected switch-python, pre-commit, reports-dir, or layout", rest[0])
	}
}

func printLayout(l project.Layout) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DIRECTORY\tPATH")
	fmt.Fprintf(w, "source\t%s\n", l.SourceDir)
	fmt.Fprintf(w, "tests\t%s\n", l.TestsDir)
	fmt.Fprintf(w, "unit tests\t%s\n", l.UnitTestsDir)
	fmt.Fprintf(w, "integration tests\t%s\n", l.IntegrationTestsDir)
	fmt.Fprintf(w, "tasks\t%s\n", l.TasksDir)
	fmt.Fprintf(w, "reports\t%s\n", l.ReportsDir)
	return w.Flush()
}
