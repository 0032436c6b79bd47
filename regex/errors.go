package regex

import (
	"github.com/fgeorgatos/mpc"
	"github.com/pkg/errors"
)

// CompileError reports a malformed pattern handed to Compile. It wraps the
// underlying *mpc.ParseError (the plain, zero-dependency value positioned
// inside the pattern string) with github.com/pkg/errors so a caller that
// cares can recover a stack trace or unwrap straight to the parse failure
// with errors.Cause, without the normal positional-error contract
// (Message/Expected/line/column) ever depending on pkg/errors itself.
type CompileError struct {
	*mpc.ParseError
	cause error
}

func newCompileError(pe *mpc.ParseError) *CompileError {
	if pe == nil {
		return nil
	}
	return &CompileError{ParseError: pe, cause: errors.WithStack(pe)}
}

// Cause supports github.com/pkg/errors' errors.Cause.
func (e *CompileError) Cause() error { return e.cause }

// Unwrap supports the standard library's errors.Unwrap/Is/As.
func (e *CompileError) Unwrap() error { return e.cause }
