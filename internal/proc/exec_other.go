//go:build !unix

package proc

import "dinos/internal/launch"

const canReplace = false

// handoff runs the child in the foreground and waits for it. The child gets
// a new PID; the exit status is forwarded through ExitError.
func (r *Replacer) handoff(path string, inv launch.Invocation) error {
	return runForeground(path, inv, r.environ())
}
