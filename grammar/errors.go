package grammar

import (
	"github.com/fgeorgatos/mpc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CompileError reports a malformed grammar spec string: an unresolved
// <name>, a bad /regex/, or a genuine parse failure in the spec's own
// syntax. It wraps the underlying *mpc.ParseError with github.com/pkg/errors
// the same way regex.CompileError does, so a caller can unwrap to the root
// parse failure with errors.Cause without the plain ParseError contract
// (Message/Expected/line/column) depending on pkg/errors itself.
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

// Options configures a single Compile call. The zero value traces
// nothing, matching plain Compile.
type Options struct {
	// Trace receives structured, debug-level trace events for the
	// self-hosted grammar-of-grammars' own combinator evaluation while it
	// compiles spec — distinct from tracing the *parser Compile returns*,
	// which is configured separately wherever that parser is itself run.
	Trace *logrus.Logger
}

func (o *Options) cfg() *mpc.Config {
	if o == nil {
		return nil
	}
	return &mpc.Config{Trace: o.Trace}
}
