package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	devuperr "github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
)

// DefaultTimeout bounds every external invocation. Package manager runs
// and network-bound clones hang forever otherwise; expiry is reported as
// that item's failure and the run moves on.
const DefaultTimeout = 10 * time.Minute

// OSRunner executes commands on the host system.
type OSRunner struct {
	// DryRun logs the command instead of executing it
	DryRun bool

	// Timeout bounds each invocation; zero means DefaultTimeout
	Timeout time.Duration

	// Stdout and Stderr receive the child process output.
	// They default to the current process's streams.
	Stdout io.Writer
	Stderr io.Writer
}

// NewOS creates a runner that executes commands on the host system.
func NewOS(dryRun bool, timeout time.Duration) *OSRunner {
	return &OSRunner{DryRun: dryRun, Timeout: timeout}
}

// CheckPresence reports whether name resolves on the search path.
func (r *OSRunner) CheckPresence(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes the command and waits for it to complete.
func (r *OSRunner) Run(ctx context.Context, name string, args ...string) error {
	logger := logging.GetLogger("runner")
	logging.LogCommand(name, args)

	if r.DryRun {
		logger.Info().
			Str("command", name).
			Strs("args", args).
			Msg("Dry run mode - command would be executed")
		return nil
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	start := time.Now()
	err := cmd.Run()
	logging.LogDuration(start, name)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return devuperr.Wrapf(err, devuperr.ErrExecTimeout,
				"%s timed out after %s", name, timeout)
		}
		return devuperr.Wrapf(err, devuperr.ErrExecFailed, "%s failed", name)
	}
	return nil
}
