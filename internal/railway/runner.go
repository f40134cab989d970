// Package railway wraps the Railway platform's command-line tool. The tool is
// treated as an opaque collaborator: this package shells out to it and
// surfaces its exit codes, implementing none of the platform's logic itself.
package railway

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is the name the Railway CLI installs under.
const DefaultBinary = "railway"

// Runner executes the external CLI. Run attaches the subprocess to the
// caller's terminal for interactive subcommands (login, logs, deploy);
// Output captures combined output for quiet probes.
type Runner interface {
	Run(ctx context.Context, args ...string) error
	Output(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs the CLI via os/exec. Calls block until the subprocess
// exits; there is no timeout beyond context cancellation.
type ExecRunner struct {
	Binary string
}

// NewExecRunner returns a runner for the given binary name, falling back to
// DefaultBinary when empty.
func NewExecRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExecRunner{Binary: binary}
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *ExecRunner) Output(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, r.Binary, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// Installed reports whether the named binary resolves on PATH.
func Installed(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// ExitCode extracts the subprocess exit code from an error returned by a
// Runner. It returns 1 for errors that did not come from a subprocess exit,
// and 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
