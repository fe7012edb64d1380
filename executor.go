package macaddrs

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// defaultTimeout bounds a single command execution.
const defaultTimeout = 5 * time.Second

// CommandExecutor runs system commands, allowing for dependency injection
// and testing.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// defaultCommandExecutor implements CommandExecutor using actual system command execution.
type defaultCommandExecutor struct {
	Timeout time.Duration
}

// Execute runs a system command with a timeout and returns its standard output.
// A command that exits non-zero yields a [*CommandError] carrying its
// standard error output.
func (e *defaultCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(timeoutCtx, name, args...)
	hideWindow(cmd)

	output, err := cmd.Output()
	if err != nil {
		cmdErr := &CommandError{Command: name, Err: err}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.Stderr = strings.TrimSpace(string(exitErr.Stderr))
		}

		return "", cmdErr
	}

	return string(output), nil
}
