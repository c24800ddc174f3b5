package cli

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinos/internal/launch"
	"dinos/internal/paths"
	"dinos/internal/proc"
	"dinos/internal/tools"
)

type recordingExecutor struct {
	launched []launch.Invocation
	err      error
}

func (r *recordingExecutor) Launch(inv launch.Invocation) error {
	r.launched = append(r.launched, inv)
	return r.err
}

type fakeRunner struct {
	missing map[string]bool
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, _ ...string) error {
	f.calls = append(f.calls, name)
	if f.missing[name] {
		return &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return nil
}

type harness struct {
	app    *app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	exec   *recordingExecutor
	runner *fakeRunner
	dir    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		exec:   &recordingExecutor{},
		runner: &fakeRunner{},
		dir:    t.TempDir(),
	}
	h.app = &app{
		stdout:   h.stdout,
		stderr:   h.stderr,
		dir:      h.dir,
		executor: h.exec,
		runner:   h.runner,
	}
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.run(context.Background(), args)
}

func (h *harness) logsCreated(t *testing.T) bool {
	t.Helper()
	ok, err := paths.DirExists(filepath.Join(h.dir, ".dinos"))
	require.NoError(t, err)
	return ok
}

func (h *harness) assertUntouched(t *testing.T) {
	t.Helper()
	assert.Empty(t, h.exec.launched, "no process may be launched")
	assert.Empty(t, h.runner.calls, "no probe may run")
	assert.False(t, h.logsCreated(t), "no run log may be opened")
}

const wantHelp = `dinOS - a simple operating system written in x86 Assembly

Usage: dinos [command]

Commands:
  run             (default) Run the operating system
  debug           Run the operating system in debug mode
  gdb <mode>      Run GDB for the operating system (in either real or protected mode)
  build           Build the operating system image from source
  clean           Clean the build directory
  check           Check that all dependencies are installed
  help            Show this help message
`

func TestHelpIsIdempotent(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 3; i++ {
		h.stdout.Reset()
		require.Equal(t, 0, h.run("help"))
		assert.Equal(t, wantHelp, h.stdout.String())
	}
	assert.Empty(t, h.stderr.String())
	h.assertUntouched(t)
}

func TestInvalidCommand(t *testing.T) {
	for _, tok := range []string{"xyz", "-h", "--help", "completion", "Run"} {
		t.Run(tok, func(t *testing.T) {
			h := newHarness(t)
			assert.Equal(t, 1, h.run(tok))
			assert.Contains(t, h.stderr.String(), "Invalid command `"+tok+"`. Run 'dinos help' for more information.")
			assert.Empty(t, h.stdout.String())
			h.assertUntouched(t)
		})
	}
}

func TestGDBModeErrors(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 1, h.run("gdb"))
	assert.Equal(t, "No mode given. Valid modes are 'real' and 'protected'.\n", h.stderr.String())
	h.assertUntouched(t)

	h = newHarness(t)
	assert.Equal(t, 1, h.run("gdb", "xyz"))
	assert.Equal(t, "Invalid mode `xyz`. Valid modes are 'real' and 'protected'.\n", h.stderr.String())
	h.assertUntouched(t)
}

func TestExtraTokenRejected(t *testing.T) {
	for _, cmd := range []string{"run", "debug", "build", "clean", "check", "help"} {
		t.Run(cmd, func(t *testing.T) {
			h := newHarness(t)
			assert.Equal(t, 1, h.run(cmd, "extra"))
			assert.Equal(t, "Unexpected argument `extra`. Run 'dinos help' for more information.\n", h.stderr.String())
			h.assertUntouched(t)
		})
	}

	h := newHarness(t)
	assert.Equal(t, 1, h.run("gdb", "real", "now"))
	assert.Contains(t, h.stderr.String(), "Unexpected argument `now`")
	h.assertUntouched(t)
}

func TestLaunchingCommands(t *testing.T) {
	tests := []struct {
		args    []string
		program string
	}{
		{nil, "qemu-system-i386"},
		{[]string{"run"}, "qemu-system-i386"},
		{[]string{"debug"}, "qemu-system-i386"},
		{[]string{"gdb", "real"}, "gdb"},
		{[]string{"gdb", "protected"}, "gdb"},
		{[]string{"build"}, "make"},
		{[]string{"clean"}, "make"},
	}

	for _, tc := range tests {
		t.Run(launch.ProgramName+" "+joinArgs(tc.args), func(t *testing.T) {
			h := newHarness(t)
			require.Equal(t, 0, h.run(tc.args...), "stderr: %s", h.stderr.String())
			require.Len(t, h.exec.launched, 1)
			assert.Equal(t, tc.program, h.exec.launched[0].Program)
			assert.Empty(t, h.runner.calls)

			req, err := launch.Parse(tc.args)
			require.NoError(t, err)
			want, ok := launch.Resolve(req)
			require.True(t, ok)
			assert.Equal(t, want, h.exec.launched[0])
		})
	}
}

func joinArgs(args []string) string {
	if len(args) == 0 {
		return "(none)"
	}
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}

func TestNoArgumentsMatchesRun(t *testing.T) {
	implicit := newHarness(t)
	require.Equal(t, 0, implicit.run())
	explicit := newHarness(t)
	require.Equal(t, 0, explicit.run("run"))

	assert.Equal(t, explicit.exec.launched, implicit.exec.launched)
}

func TestLaunchWritesRunLog(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("gdb", "protected"))

	entries, err := os.ReadDir(filepath.Join(h.dir, ".dinos", "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(h.dir, ".dinos", "logs", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "command=gdb")
	assert.Contains(t, string(data), "mode=protected")
}

func TestCheckAllPresent(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 0, h.run("check"))
	assert.Equal(t, "All dependencies are installed.\n", h.stdout.String())
	assert.Empty(t, h.stderr.String())
	assert.Equal(t, []string{"qemu-system-i386", "make", "nasm", "mkfs.fat", "mcopy"}, h.runner.calls)
	assert.Empty(t, h.exec.launched)
}

func TestCheckOneMissing(t *testing.T) {
	h := newHarness(t)
	h.runner.missing = map[string]bool{"nasm": true}

	assert.Equal(t, 1, h.run("check"))
	assert.Contains(t, h.stderr.String(), "NASM is not installed. Please install it and try again.\n")
	assert.NotContains(t, h.stderr.String(), "QEMU")
	assert.Empty(t, h.stdout.String())
	assert.Equal(t, []string{"qemu-system-i386", "make", "nasm", "mkfs.fat", "mcopy"}, h.runner.calls)
	assert.Empty(t, h.exec.launched)
}

func TestCheckReportsEveryMissing(t *testing.T) {
	h := newHarness(t)
	h.runner.missing = map[string]bool{"qemu-system-i386": true, "mcopy": true}

	assert.Equal(t, 1, h.run("check"))
	stderr := h.stderr.String()
	assert.Contains(t, stderr, "QEMU is not installed.")
	assert.Contains(t, stderr, "mtools is not installed.")
	assert.Less(t, bytes.Index(h.stderr.Bytes(), []byte("QEMU")), bytes.Index(h.stderr.Bytes(), []byte("mtools")))
}

func TestExecutableNotFound(t *testing.T) {
	h := newHarness(t)
	h.exec.err = &proc.NotFoundError{Program: "make", Err: exec.ErrNotFound}

	assert.Equal(t, 127, h.run("build"))
	assert.Equal(t, "dinos: make: executable file not found in $PATH\n", h.stderr.String())
}

func TestChildExitStatusForwarded(t *testing.T) {
	h := newHarness(t)
	h.exec.err = &proc.ExitError{Program: "make", Code: 2}

	assert.Equal(t, 2, h.run("clean"))
	assert.Empty(t, h.stderr.String())
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "dinos.yaml"), []byte("color: rainbow\n"), 0o644))

	require.Equal(t, 0, h.run("run"))
	assert.Contains(t, h.stderr.String(), "warning: ")
	assert.Contains(t, h.stderr.String(), `color "rainbow"`)
	require.Len(t, h.exec.launched, 1)
	want, ok := launch.Resolve(launch.Request{Command: launch.CommandRun})
	require.True(t, ok)
	assert.Equal(t, want, h.exec.launched[0])

	entries, err := os.ReadDir(filepath.Join(h.dir, ".dinos", "logs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMalformedConfigStillProbes(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "dinos.yaml"), []byte("log: [\n"), 0o644))

	require.Equal(t, 0, h.run("check"))
	assert.Contains(t, h.stderr.String(), "warning: unmarshal config")
	assert.Len(t, h.runner.calls, len(tools.Manifest()))
	assert.Equal(t, "All dependencies are installed.\n", h.stdout.String())
}

func TestConfiguredLogDir(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "dinos.yaml"), []byte("log:\n  dir: logs\n  level: debug\n"), 0o644))

	require.Equal(t, 0, h.run("build"))
	entries, err := os.ReadDir(filepath.Join(h.dir, "logs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunLogsArePruned(t *testing.T) {
	h := newHarness(t)
	logs := filepath.Join(h.dir, ".dinos", "logs")
	require.NoError(t, os.MkdirAll(logs, 0o755))
	for _, name := range []string{"20200101-000000.log", "20200102-000000.log", "20200103-000000.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(logs, name), []byte("old\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "dinos.yaml"), []byte("log:\n  keep: 2\n"), 0o644))

	require.Equal(t, 0, h.run("build"))

	entries, err := os.ReadDir(logs)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "20200103-000000.log", entries[0].Name())
	assert.NotEqual(t, "20200102-000000.log", entries[1].Name())
}
