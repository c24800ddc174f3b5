package cli

import (
	"errors"
	"fmt"

	"dinos/internal/launch"
	"dinos/internal/proc"
)

// fail reports err on stderr and returns the exit status for it.
func (a *app) fail(err error) int {
	var usageErr *launch.UsageError
	var exitErr *proc.ExitError
	var notFound *proc.NotFoundError

	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(a.stderr, usageErr.Error())
		return usageErr.ExitCode()
	case errors.Is(err, errDependenciesMissing):
		return 1
	case errors.As(err, &exitErr):
		// The child already spoke for itself.
		return exitErr.ExitCode()
	case errors.As(err, &notFound):
		fmt.Fprintf(a.stderr, "%s: %s\n", launch.ProgramName, notFound.Error())
		return notFound.ExitCode()
	default:
		fmt.Fprintf(a.stderr, "%s: %v\n", launch.ProgramName, err)
		return 1
	}
}
