package tools

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotInstalled marks a probe whose executable is not on the search path.
var ErrNotInstalled = errors.New("not found in PATH")

// Runner starts a probe and waits for it. Implementations must discard the
// probe's output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs probes as real child processes with stdin, stdout and
// stderr attached to the null device.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}

// Probe runs dep's probe through runner and classifies the outcome. Any exit
// status counts as installed since many version flags exit non-zero; only a
// failure to start the program counts as missing.
func Probe(ctx context.Context, runner Runner, dep Dependency) Result {
	res := Result{Dependency: dep}
	if dep.Program() == "" {
		res.Err = errors.New("empty probe")
		return res
	}

	err := runner.Run(ctx, dep.Program(), dep.Probe[1:]...)
	if err == nil {
		res.Found = true
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Found = true
		return res
	}

	if errors.Is(err, exec.ErrNotFound) {
		res.Err = fmt.Errorf("%s: %w", dep.Program(), ErrNotInstalled)
		return res
	}
	res.Err = fmt.Errorf("start %s: %w", dep.Program(), err)
	return res
}

// Check probes every dependency in order. It never stops early.
func Check(ctx context.Context, runner Runner, deps []Dependency) Report {
	report := Report{Results: make([]Result, 0, len(deps))}
	for _, dep := range deps {
		report.Results = append(report.Results, Probe(ctx, runner, dep))
	}
	return report
}
