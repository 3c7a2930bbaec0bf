package lp

import "errors"

// ErrSolutionFormat indicates a solution file that does not match the
// expected layout. Test for it with errors.Is.
var ErrSolutionFormat = errors.New("incorrect solution format")

// Error represents a failure in this package with context about which
// operation failed.
type Error struct {
	Op     string // Operation that failed (e.g., "Run", "ParseSolution")
	Solver string // Solver display name, when the failure involved one
	Msg    string // Additional context
	Err    error  // Underlying error, if any
}

func (e *Error) Error() string {
	s := "lp: "
	if e.Solver != "" {
		s += e.Solver + ": "
	}
	s += e.Op + " failed"
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newFormatError creates a new Error wrapping ErrSolutionFormat.
func newFormatError(op, solver, msg string) error {
	return &Error{Op: op, Solver: solver, Msg: msg, Err: ErrSolutionFormat}
}
