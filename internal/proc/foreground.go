package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"dinos/internal/launch"
)

// runForeground runs the child with the launcher's standard streams and
// waits for it. A non-zero status comes back as ExitError.
func runForeground(path string, inv launch.Invocation, environ []string) error {
	cmd := exec.Command(path, inv.Args...)
	cmd.Args[0] = inv.Program
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Program: inv.Program, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("run %s: %w", inv.Program, err)
}
