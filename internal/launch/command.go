package launch

// Command is a top-level verb selected by the first user-supplied token.
type Command string

const (
	CommandRun   Command = "run"
	CommandDebug Command = "debug"
	CommandGDB   Command = "gdb"
	CommandBuild Command = "build"
	CommandClean Command = "clean"
	CommandCheck Command = "check"
	CommandHelp  Command = "help"
)

// Mode selects the processor mode the debugger attaches in.
type Mode string

const (
	ModeNone      Mode = ""
	ModeReal      Mode = "real"
	ModeProtected Mode = "protected"
)

// Request is a validated command line.
type Request struct {
	Command Command
	Mode    Mode
}

// CommandInfo describes one entry of the command catalog.
type CommandInfo struct {
	Command Command
	Usage   string
	Summary string
	// Arity is the number of tokens accepted after the command itself.
	Arity int
}

// catalog lists every command in display order.
var catalog = []CommandInfo{
	{Command: CommandRun, Usage: "run", Summary: "(default) Run the operating system"},
	{Command: CommandDebug, Usage: "debug", Summary: "Run the operating system in debug mode"},
	{Command: CommandGDB, Usage: "gdb <mode>", Summary: "Run GDB for the operating system (in either real or protected mode)", Arity: 1},
	{Command: CommandBuild, Usage: "build", Summary: "Build the operating system image from source"},
	{Command: CommandClean, Usage: "clean", Summary: "Clean the build directory"},
	{Command: CommandCheck, Usage: "check", Summary: "Check that all dependencies are installed"},
	{Command: CommandHelp, Usage: "help", Summary: "Show this help message"},
}

// Catalog returns a copy of the command catalog in display order.
func Catalog() []CommandInfo {
	out := make([]CommandInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (CommandInfo, bool) {
	for _, info := range catalog {
		if string(info.Command) == name {
			return info, true
		}
	}
	return CommandInfo{}, false
}

// Modes returns the accepted gdb modes.
func Modes() []Mode {
	return []Mode{ModeReal, ModeProtected}
}
