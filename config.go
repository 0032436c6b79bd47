package mpc

import "github.com/sirupsen/logrus"

// Config carries the evaluator's optional, explicitly-passed knobs. There
// is no environment-variable or config-file surface (§6): every field here
// must be set by the caller.
type Config struct {
	// Trace, if non-nil, receives structured, debug-level trace events
	// for combinator entry/exit. Left nil, tracing is skipped entirely
	// so the hot path allocates nothing for it.
	Trace *logrus.Logger

	// MaxDepth bounds the evaluator's recursion depth. It exists to turn
	// unbounded left recursion into a reported parse error instead of a
	// process-ending stack overflow. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is used when Config.MaxDepth is zero.
const DefaultMaxDepth = 1 << 16

func (c *Config) maxDepth() int {
	if c == nil || c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

func (c *Config) trace() *logrus.Logger {
	if c == nil {
		return nil
	}
	return c.Trace
}
