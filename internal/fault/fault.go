// Package fault classifies the errors that end the program and maps them
// to conventional sysexits(3) exit statuses.
package fault

import (
	"errors"
	"fmt"
)

// Kind is the category of a fatal error.
type Kind int

const (
	Unknown Kind = iota
	Usage
	FileAccess
	IOError
	Software
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage"
	case FileAccess:
		return "file access"
	case IOError:
		return "i/o"
	case Software:
		return "software"
	default:
		return "unknown"
	}
}

// Exit statuses from sysexits(3).
const (
	ExitOK        = 0
	ExitUsage     = 64
	ExitSoftware  = 70
	ExitCantCreat = 73
	ExitIOErr     = 74
)

// Error is a classified error. Op names the failed operation and Path the
// file involved, if any.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err == nil {
		return msg
	}
	if msg == "" {
		return e.Err.Error()
	}
	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Usagef reports a bad command line or configuration.
func Usagef(format string, args ...any) error {
	return &Error{Kind: Usage, Err: fmt.Errorf(format, args...)}
}

// CantCreate wraps a failure to open or create path.
func CantCreate(op, path string, err error) error {
	return &Error{Kind: FileAccess, Op: op, Path: path, Err: err}
}

// IO wraps a read, write or lock failure on path.
func IO(op, path string, err error) error {
	return &Error{Kind: IOError, Op: op, Path: path, Err: err}
}

// Internal wraps an unexpected failure of a trusted facility.
func Internal(op string, err error) error {
	return &Error{Kind: Software, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// ExitCode maps err to a process exit status. Unclassified errors are
// software errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case Usage:
		return ExitUsage
	case FileAccess:
		return ExitCantCreat
	case IOError:
		return ExitIOErr
	default:
		return ExitSoftware
	}
}
