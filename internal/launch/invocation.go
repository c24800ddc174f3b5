package launch

import "strings"

// External programs, resolved through the search path.
const (
	EmulatorProgram  = "qemu-system-i386"
	DebuggerProgram  = "gdb"
	BuildToolProgram = "make"
)

// Fixed locations inside the dinOS source tree and the entry points the
// debugger breaks on.
const (
	FloppyImage         = "./build/main.img"
	DisplayName         = "dinOS"
	RealModeInitScript  = "gdb/gdb_init_real_mode.txt"
	ProtectedInitScript = "gdb/gdb_init_protected_mode.txt"
	TargetDescription   = "gdb/target.xml"
	RemoteTarget        = "localhost:1234"
	RealModeEntry       = "0x7c00"
	ProtectedModeEntry  = "0x10000"
	CleanTarget         = "clean"
)

// Invocation is a fully resolved child process launch.
type Invocation struct {
	Program string
	Args    []string
}

// Argv returns the argument vector including the program name as argv[0].
func (inv Invocation) Argv() []string {
	return append([]string{inv.Program}, inv.Args...)
}

// String renders the command line the way it is logged before launch.
func (inv Invocation) String() string {
	return strings.Join(inv.Argv(), " ")
}

func (inv Invocation) clone() Invocation {
	args := make([]string, len(inv.Args))
	copy(args, inv.Args)
	return Invocation{Program: inv.Program, Args: args}
}

func emulatorArgs(extra ...string) []string {
	base := []string{"-monitor", "stdio", "-fda", FloppyImage, "-name", DisplayName}
	return append(base, extra...)
}

func debuggerArgs(initScript string, setup []string, entry string) []string {
	args := []string{"-ix", initScript}
	for _, cmd := range setup {
		args = append(args, "-ex", cmd)
	}
	return append(args,
		"-ex", "target remote "+RemoteTarget,
		"-ex", "br *"+entry,
		"-ex", "c",
	)
}

// invocations maps every launching request to its child process.
var invocations = map[Request]Invocation{
	{Command: CommandRun}: {
		Program: EmulatorProgram,
		Args:    emulatorArgs(),
	},
	{Command: CommandDebug}: {
		Program: EmulatorProgram,
		Args:    emulatorArgs("-boot", "a", "-s", "-S"),
	},
	{Command: CommandGDB, Mode: ModeReal}: {
		Program: DebuggerProgram,
		Args:    debuggerArgs(RealModeInitScript, []string{"set tdesc filename " + TargetDescription}, RealModeEntry),
	},
	{Command: CommandGDB, Mode: ModeProtected}: {
		Program: DebuggerProgram,
		Args:    debuggerArgs(ProtectedInitScript, nil, ProtectedModeEntry),
	},
	{Command: CommandBuild}: {
		Program: BuildToolProgram,
		Args:    []string{},
	},
	{Command: CommandClean}: {
		Program: BuildToolProgram,
		Args:    []string{CleanTarget},
	},
}

// Resolve returns a fresh invocation for req. Requests that do not launch a
// child (help, check) report false.
func Resolve(req Request) (Invocation, bool) {
	inv, ok := invocations[req]
	if !ok {
		return Invocation{}, false
	}
	return inv.clone(), true
}
