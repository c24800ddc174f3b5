//go:build unix

package proc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"dinos/internal/launch"
)

const canReplace = true

// handoff replaces the process image. The child keeps this process's PID
// and standard streams.
func (r *Replacer) handoff(path string, inv launch.Invocation) error {
	err := unix.Exec(path, inv.Argv(), r.environ())
	return fmt.Errorf("exec %s: %w", inv.Program, err)
}
