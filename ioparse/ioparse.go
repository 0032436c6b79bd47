// Package ioparse supplies the "file variants" §6 asks for: ParseFile, a
// thin wrapper over Parse that reads a whole file into memory first.
// Reading a file is an OS boundary, not a combinator concern, so this
// package is the one library package in the module that reaches for the
// standard library's os package rather than a pack dependency — there is
// no file-I/O library anywhere in the retrieval pack to ground it on
// instead (see DESIGN.md).
package ioparse

import (
	"os"

	"github.com/fgeorgatos/mpc"
)

// ParseFile reads path and parses its contents with p, labelling any
// error with path the way Parse labels its filename argument. A read
// failure is reported as a *mpc.ParseError at position zero so callers
// have one error type to handle regardless of whether the failure was in
// opening the file or in parsing what it contained.
func ParseFile(path string, p *mpc.Parser, cfg *mpc.Config) (mpc.Value, *mpc.ParseError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mpc.NewParseError(path, 1, 1, 0, 0, true, "a readable file ("+err.Error()+")")
	}
	return mpc.Parse(path, data, p, cfg)
}
