package cli

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dinos/internal/config"
	"dinos/internal/launch"
	"dinos/internal/tools"
	"dinos/internal/tui"
)

// Execute runs the launcher with the process arguments and exits. Commands
// that hand off to a child never get here on unix.
func Execute() {
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		runner: tools.ExecRunner{},
	}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

// app holds the collaborators of one launcher run.
type app struct {
	stdout io.Writer
	stderr io.Writer
	dir    string // project root; empty means the working directory

	executor launch.Executor
	runner   tools.Runner

	cfg       config.Config
	log       *logrus.Logger
	logCloser io.Closer
	styles    tui.Styles
}

func (a *app) run(ctx context.Context, args []string) int {
	// Reject malformed input before cobra, config or logging is touched.
	if _, err := launch.Parse(args); err != nil {
		return a.fail(err)
	}

	defer a.closeLog()

	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		return a.fail(err)
	}
	return 0
}

func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                launch.ProgramName,
		Short:              helpTitle,
		Args:               cobra.ArbitraryArgs,
		RunE:               a.dispatch,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		writeHelp(c.OutOrStdout())
	})
	cmd.SetHelpCommand(a.newCommand(launch.CommandHelp))

	for _, info := range launch.Catalog() {
		if info.Command == launch.CommandHelp {
			continue
		}
		cmd.AddCommand(a.newCommand(info.Command))
	}

	return cmd
}

func (a *app) newCommand(c launch.Command) *cobra.Command {
	info, _ := launch.Lookup(string(c))
	return &cobra.Command{
		Use:                info.Usage,
		Short:              info.Summary,
		Args:               cobra.ArbitraryArgs,
		RunE:               a.dispatch,
		DisableFlagParsing: true,
	}
}

// commandTokens rebuilds the raw tokens cobra consumed for cmd.
func commandTokens(cmd *cobra.Command, args []string) []string {
	if !cmd.HasParent() {
		return args
	}
	return append([]string{cmd.Name()}, args...)
}

func (a *app) dispatch(cmd *cobra.Command, args []string) error {
	req, err := launch.Parse(commandTokens(cmd, args))
	if err != nil {
		return err
	}

	d := &launch.Dispatcher{
		Help: func(context.Context) error {
			writeHelp(cmd.OutOrStdout())
			return nil
		},
		Check: a.runCheck,
	}

	if req.Command != launch.CommandHelp {
		if err := a.prepare(req); err != nil {
			return err
		}
		d.Executor = a.executor
	}

	return d.Dispatch(cmd.Context(), req)
}
