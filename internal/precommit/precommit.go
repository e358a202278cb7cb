// ABOUTME: Installs the pre-commit git hooks for the project
// ABOUTME: Runs quietly on a PTY; failures propagate to the caller

package precommit

import (
	"context"
	"fmt"

	"github.com/pytaskio/pytask/internal/runner"
)

const installCmd = "pre-commit install"

// Ensure installs the pre-commit hooks. Output is hidden; a failing
// install returns the underlying command error.
func Ensure(ctx context.Context, r runner.Runner) error {
	cmd := runner.Command{Line: installCmd, PTY: true, Hide: runner.HideBoth}
	if _, err := r.Run(ctx, cmd); err != nil {
		return fmt.Errorf("installing pre-commit hooks: %w", err)
	}
	return nil
}
