// ABOUTME: ShellRunner executes command lines via bash -c, plain or on a pseudo-terminal
// ABOUTME: PTY mode streams merged output live while keeping a captured copy

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"

	"github.com/pytaskio/pytask/internal/log"
)

// ShellRunner runs commands through bash on the local machine.
type ShellRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewShellRunner returns a ShellRunner streaming to the process's
// stdout and stderr.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{stdout: os.Stdout, stderr: os.Stderr}
}

// NewShellRunnerTo returns a ShellRunner streaming visible output to
// the given writers.
func NewShellRunnerTo(stdout, stderr io.Writer) *ShellRunner {
	return &ShellRunner{stdout: stdout, stderr: stderr}
}

// Run executes the command and blocks until it finishes. Stdout is
// captured into the Result even when hidden from the terminal. A
// non-zero exit returns an *ExitError.
func (r *ShellRunner) Run(ctx context.Context, c Command) (Result, error) {
	bashPath, err := exec.LookPath("bash")
	if err != nil {
		return Result{}, fmt.Errorf("bash not found on PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, bashPath, "-c", c.Line)
	cmd.Env = applyEnv(os.Environ(), c.Env)

	log.Debug("run: %s (pty=%v hide=%d)", c.Line, c.PTY, c.Hide)

	var capture bytes.Buffer
	if c.PTY {
		return finish(ctx, c, &capture, r.runPTY(cmd, c, &capture))
	}

	cmd.Stdout = io.Writer(&capture)
	if c.Hide == HideNone {
		cmd.Stdout = io.MultiWriter(&capture, r.stdout)
	}
	cmd.Stderr = io.Discard
	if c.Hide != HideBoth {
		cmd.Stderr = r.stderr
	}

	return finish(ctx, c, &capture, cmd.Run())
}

// runPTY starts the command on a pseudo-terminal and drains it. The
// pty merges stdout and stderr, so any Hide value other than HideNone
// suppresses the whole stream.
func (r *ShellRunner) runPTY(cmd *exec.Cmd, c Command, capture *bytes.Buffer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	defer ptmx.Close()

	out := io.Writer(capture)
	if c.Hide == HideNone {
		out = io.MultiWriter(capture, r.stdout)
	}

	// On Linux the read side returns EIO once the child exits; that is
	// the normal end of stream, not a failure.
	if _, copyErr := io.Copy(out, ptmx); copyErr != nil && !errors.Is(copyErr, syscall.EIO) {
		log.Debug("pty copy: %v", copyErr)
	}

	return cmd.Wait()
}

// finish translates the raw run error into the Runner error contract.
func finish(ctx context.Context, c Command, capture *bytes.Buffer, runErr error) (Result, error) {
	res := Result{Stdout: capture.String()}
	if runErr == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		return res, fmt.Errorf("command %q canceled: %w", c.Line, ctx.Err())
	}
	return res, &ExitError{Line: c.Line, Stdout: res.Stdout, Err: runErr}
}

// applyEnv overlays overrides onto base. "KEY=VALUE" entries replace or
// append; bare "KEY" entries remove KEY entirely.
func applyEnv(base, overrides []string) []string {
	if len(overrides) == 0 {
		return base
	}

	env := make([]string, 0, len(base)+len(overrides))
	drop := make(map[string]bool)
	set := make(map[string]string)
	for _, o := range overrides {
		if key, val, ok := strings.Cut(o, "="); ok {
			set[key] = val
		} else {
			drop[o] = true
		}
	}

	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if drop[key] {
			continue
		}
		if _, ok := set[key]; ok {
			continue
		}
		env = append(env, kv)
	}
	for key, val := range set {
		env = append(env, key+"="+val)
	}
	return env
}
