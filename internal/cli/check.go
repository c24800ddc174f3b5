package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"dinos/internal/tools"
	"dinos/internal/tui"
)

// errDependenciesMissing ends `check` with status 1 after every missing
// dependency has been reported.
var errDependenciesMissing = errors.New("dependencies missing")

func (a *app) runCheck(ctx context.Context) error {
	report := tools.Check(ctx, a.runner, tools.Manifest())

	for _, res := range report.Results {
		entry := a.log.WithFields(logrus.Fields{
			"dependency": res.Dependency.Name,
			"probe":      res.Dependency.Probe,
			"found":      res.Found,
		})
		if res.Err != nil {
			entry = entry.WithError(res.Err)
		}
		entry.Info("dependency probe")
	}

	for _, res := range report.Missing() {
		msg := fmt.Sprintf("%s is not installed. Please install it and try again.", res.Dependency.Name)
		fmt.Fprintln(a.stderr, a.styles.Error.Render(msg))
		for _, hint := range tools.InstallHints(res.Dependency) {
			fmt.Fprintln(a.stderr, a.styles.Muted.Render("  "+hint))
		}
	}
	if !report.OK() {
		return errDependenciesMissing
	}

	out := tui.NewStyles(a.stdout, a.cfg.Color)
	fmt.Fprintln(a.stdout, out.Success.Render("All dependencies are installed."))
	return nil
}
