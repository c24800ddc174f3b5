package cli

import (
	"bytes"
	"fmt"
	"io"

	"dinos/internal/launch"
)

const helpTitle = "dinOS - a simple operating system written in x86 Assembly"

// writeHelp prints the command catalog. The output is plain text and does not
// depend on the terminal, config or environment.
func writeHelp(w io.Writer) {
	var out bytes.Buffer

	out.WriteString(helpTitle)
	out.WriteString("\n\n")
	fmt.Fprintf(&out, "Usage: %s [command]\n\n", launch.ProgramName)
	out.WriteString("Commands:\n")
	for _, info := range launch.Catalog() {
		fmt.Fprintf(&out, "  %-16s%s\n", info.Usage, info.Summary)
	}

	w.Write(out.Bytes())
}
