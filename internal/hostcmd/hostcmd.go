// Package hostcmd wraps host command execution behind an interface so probes
// can be tested without spawning processes.
package hostcmd

import (
	"context"
	"os/exec"
)

// Runner executes host commands. Probes treat it as their only channel to
// hardware/OS state obtained via external tools.
type Runner interface {
	// Output runs the command and returns its standard output. A non-zero
	// exit status is returned as an error.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// CombinedOutput runs the command and returns interleaved stdout and
	// stderr together with the command's exit error, if any. Callers that
	// inspect tool output on failure (e.g. stress verifiers) use this.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// System runs commands on the local host.
type System struct{}

func (System) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (System) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
