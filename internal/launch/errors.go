package launch

import (
	"fmt"
	"strings"
)

// ProgramName is the name used in user-facing messages.
const ProgramName = "dinos"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidCommand
	ErrMissingMode
	ErrInvalidMode
	ErrUnexpectedArgument
)

// UsageError is a malformed command line. It is always reported before any
// external process is touched.
type UsageError struct {
	Kind    ErrorKind
	Token   string
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// ExitCode is the status the program terminates with.
func (e *UsageError) ExitCode() int {
	return 1
}

var _ error = (*UsageError)(nil)

func helpPointer() string {
	return fmt.Sprintf("Run '%s help' for more information.", ProgramName)
}

func modeList() string {
	modes := Modes()
	quoted := make([]string, len(modes))
	for i, m := range modes {
		quoted[i] = "'" + string(m) + "'"
	}
	return strings.Join(quoted, " and ")
}

// InvalidCommand is returned when the first token names no command.
func InvalidCommand(token string, suggestions ...string) *UsageError {
	msg := fmt.Sprintf("Invalid command `%s`. %s", token, helpPointer())
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\nDid you mean `%s`?", strings.Join(suggestions, "`, `"))
	}
	return &UsageError{Kind: ErrInvalidCommand, Token: token, Message: msg}
}

// MissingMode is returned for gdb without a mode.
func MissingMode() *UsageError {
	return &UsageError{
		Kind:    ErrMissingMode,
		Message: fmt.Sprintf("No mode given. Valid modes are %s.", modeList()),
	}
}

// InvalidMode is returned for gdb with an unknown mode.
func InvalidMode(token string) *UsageError {
	return &UsageError{
		Kind:    ErrInvalidMode,
		Token:   token,
		Message: fmt.Sprintf("Invalid mode `%s`. Valid modes are %s.", token, modeList()),
	}
}

// UnexpectedArgument is returned for the first token past a command's arity.
func UnexpectedArgument(token string) *UsageError {
	return &UsageError{
		Kind:    ErrUnexpectedArgument,
		Token:   token,
		Message: fmt.Sprintf("Unexpected argument `%s`. %s", token, helpPointer()),
	}
}
