package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"dinos/internal/config"
	"dinos/internal/launch"
	"dinos/internal/logx"
	"dinos/internal/paths"
	"dinos/internal/proc"
	"dinos/internal/tui"
)

// prepare loads config, opens the run log and builds the executor for a
// request that passed validation.
func (a *app) prepare(req launch.Request) error {
	pp, err := paths.Resolve(a.dir)
	if err != nil {
		return err
	}

	// The config only shapes diagnostics; a broken file never blocks a launch.
	cfg, cfgErr := config.Load(pp.ConfigFile)
	if cfgErr != nil {
		cfg = config.Default()
	}
	a.cfg = cfg
	pp = paths.ApplyConfig(pp, cfg)
	a.styles = tui.NewStyles(a.stderr, cfg.Color)
	if cfgErr != nil {
		a.warn(cfgErr)
	}

	logger, closer, err := logx.New(pp, cfg.Log.Level)
	if err != nil {
		a.warn(err)
		logger = logx.Discard()
	}
	a.log = logger
	a.logCloser = closer
	if closer != nil {
		if removed, err := logx.Prune(pp.LogsDir, cfg.Log.Keep); err != nil {
			a.log.WithError(err).Warn("prune run logs")
		} else if removed > 0 {
			a.log.WithField("removed", removed).Debug("pruned run logs")
		}
	}

	terminals := tui.CurrentTerminalState()
	entry := a.log.WithFields(logrus.Fields{
		"command":      req.Command,
		"project":      pp.Root,
		"stdin_tty":    terminals.Stdin,
		"stdout_tty":   terminals.Stdout,
		"stderr_tty":   terminals.Stderr,
		"color":        cfg.Color,
		"config_found": fileExists(pp.ConfigFile),
	})
	if cfgErr != nil {
		entry = entry.WithField("config_error", cfgErr.Error())
	}
	if req.Mode != launch.ModeNone {
		entry = entry.WithField("mode", req.Mode)
	}
	entry.Info("dinos start")

	for _, art := range pp.Artefacts() {
		a.log.WithFields(logrus.Fields{"path": art.Path, "exists": art.Exists}).Debug(art.Name)
	}

	if a.executor == nil {
		a.executor = proc.NewReplacer(a.stderr, a.styles, a.log)
	}
	return nil
}

func (a *app) warn(err error) {
	fmt.Fprintln(a.stderr, a.styles.Muted.Render("warning: "+err.Error()))
}

func (a *app) closeLog() {
	if a.logCloser != nil {
		a.logCloser.Close()
		a.logCloser = nil
	}
}

func fileExists(path string) bool {
	ok, _ := paths.FileExists(path)
	return ok
}
