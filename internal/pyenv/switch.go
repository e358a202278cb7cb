// ABOUTME: Switches the project's local Python version via pyenv and poetry
// ABOUTME: Missing versions are a guided failure, not a crash; steps run discretely

package pyenv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pytaskio/pytask/internal/console"
	"github.com/pytaskio/pytask/internal/runner"
)

// ErrVersionNotFound reports that no installed pyenv version matches
// the requested one. The switcher has already printed guidance when
// this is returned.
var ErrVersionNotFound = errors.New("no matching pyenv version")

const listVersionsCmd = "pyenv versions --bare"

// Switcher changes the local Python virtual environment to a different
// interpreter version.
type Switcher struct {
	runner  runner.Runner
	printer *console.Printer
}

// NewSwitcher returns a Switcher using the given runner and printer.
func NewSwitcher(r runner.Runner, p *console.Printer) *Switcher {
	return &Switcher{runner: r, printer: p}
}

// Switch moves the project to the given Python version (MAJOR.MINOR,
// e.g. "3.6"). It resolves the greatest installed pyenv version with
// that prefix, then recreates the virtual environment: clean removal of
// .venv, pyenv local, poetry install. Each step runs PTY-attached so
// the user sees live output, and any step failure propagates.
//
// When no installed version matches, available versions and install
// instructions are printed and ErrVersionNotFound is returned; no
// switch step runs.
func (s *Switcher) Switch(ctx context.Context, version string) error {
	if err := s.printer.PrintHeader(fmt.Sprintf("Switching to Python %s", version), 1, "🐍"); err != nil {
		return err
	}

	res, err := s.runner.Run(ctx, runner.Command{Line: listVersionsCmd, Hide: runner.HideStdout})
	if err != nil {
		return fmt.Errorf("listing pyenv versions: %w", err)
	}

	versions := parseVersions(res.Stdout)
	sortVersions(versions)

	match := matchVersion(versions, version)
	if match == "" {
		s.printer.Failuref("No pyenv Python version matching Python %s found.\n", version)
		s.printer.Printf(
			"Available versions: %s.\n"+
				"See all installable versions with:\n"+
				"\tpyenv install --list\n"+
				"and install it with:\n"+
				"\tpyenv install <PYTHON_VERSION>\n",
			quoteJoin(versions),
		)
		return fmt.Errorf("python %s: %w", version, ErrVersionNotFound)
	}

	s.printer.Successf("Found pyenv Python version '%s'.\n", match)

	return s.recreateEnv(ctx, match)
}

// recreateEnv rebuilds the local virtual environment for the matched
// version as discrete steps so a failure points at the step that broke.
// VIRTUAL_ENV is scrubbed from the child environment in place of the
// shell-level deactivate precaution.
func (s *Switcher) recreateEnv(ctx context.Context, version string) error {
	steps := []struct {
		name string
		line string
	}{
		{"removing virtual environment", "git clean -fxd .venv"},
		{"setting local Python version", "pyenv local " + version},
		{"installing dependencies", "poetry install"},
	}

	for _, step := range steps {
		cmd := runner.Command{
			Line: step.line,
			PTY:  true,
			Env:  []string{"VIRTUAL_ENV"},
		}
		if _, err := s.runner.Run(ctx, cmd); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// quoteJoin renders versions as a comma-separated list of quoted names.
func quoteJoin(versions []string) string {
	quoted := make([]string, len(versions))
	for i, v := range versions {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
