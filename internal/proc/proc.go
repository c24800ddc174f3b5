// Package proc hands control of the terminal to external programs.
package proc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"dinos/internal/launch"
	"dinos/internal/tui"
)

// NotFoundError reports a program missing from the search path.
type NotFoundError struct {
	Program string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: executable file not found in $PATH", e.Program)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ExitCode is the conventional shell status for a missing command.
func (e *NotFoundError) ExitCode() int { return 127 }

// ExitError carries the status of a child that was waited on rather than
// exec'd into.
type ExitError struct {
	Program string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Code)
}

// ExitCode is the status the launcher must terminate with.
func (e *ExitError) ExitCode() int { return e.Code }

// Replacer launches invocations by replacing the current process image where
// the platform allows it.
type Replacer struct {
	// Diag receives the "Executing command" line.
	Diag   io.Writer
	Styles tui.Styles
	Log    *logrus.Logger

	lookPath func(string) (string, error)
	environ  func() []string
}

// NewReplacer returns a Replacer writing diagnostics to diag.
func NewReplacer(diag io.Writer, styles tui.Styles, log *logrus.Logger) *Replacer {
	return &Replacer{
		Diag:     diag,
		Styles:   styles,
		Log:      log,
		lookPath: exec.LookPath,
		environ:  os.Environ,
	}
}

var _ launch.Executor = (*Replacer)(nil)

// Launch logs the command line and transfers control to it. On unix a
// successful call never returns.
func (r *Replacer) Launch(inv launch.Invocation) error {
	if inv.Program == "" {
		return errors.New("launch: empty program name")
	}

	fmt.Fprintln(r.Diag, r.Styles.Muted.Render("Executing command: "+inv.String()))

	path, err := r.lookPath(inv.Program)
	if err != nil {
		r.Log.WithError(err).WithField("program", inv.Program).Error("program not found")
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return &NotFoundError{Program: inv.Program, Err: err}
		}
		return fmt.Errorf("locate %s: %w", inv.Program, err)
	}

	r.Log.WithFields(logrus.Fields{
		"program": inv.Program,
		"path":    path,
		"args":    inv.Args,
		"replace": canReplace,
	}).Info("launching")

	return r.handoff(path, inv)
}
