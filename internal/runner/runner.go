// ABOUTME: Command execution boundary: run shell commands, optionally PTY-attached
// ABOUTME: Captures stdout even when hidden; non-zero exit surfaces as ExitError

package runner

import (
	"context"
	"fmt"
)

// Hide controls which command output streams are suppressed from the
// user's terminal. Stdout is always captured into the Result regardless.
type Hide int

const (
	HideNone   Hide = iota // stream everything to the terminal
	HideStdout             // suppress stdout, stream stderr
	HideBoth               // suppress both streams
)

// Command describes a single shell invocation.
type Command struct {
	// Line is passed to the shell verbatim (bash -c).
	Line string
	// PTY attaches the command to a pseudo-terminal so interactive
	// tools show live output.
	PTY bool
	// Hide selects which streams to keep off the terminal.
	Hide Hide
	// Env entries (KEY=VALUE) override the inherited environment.
	// A bare "KEY" entry removes KEY from the environment.
	Env []string
}

// Result holds the captured output of a completed command.
type Result struct {
	Stdout string
}

// Runner executes commands. Implementations block until the command
// finishes and return an error for any non-zero exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Line   string
	Stdout string
	Err    error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Line, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
