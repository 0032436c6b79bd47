package mpc

// Value is the opaque result produced by a successful parse. The library
// never inspects a Value's concrete type; only user-supplied Fold/Apply
// functions (or an AST built from them, see package ast) do. It stands in
// for the "opaque pointer" of §3 — in Go that's simply any, since the
// garbage collector removes the need for an owning/borrowing distinction.
type Value = any

// Fold combines an accumulator with a newly parsed element, as used by
// Many/Many1/Count and Also's sequencing (And uses AFold). Go's garbage collector frees
// any value fold chooses not to retain, so unlike the C original fold has
// no destructor obligation: discarding acc or elem is enough.
type Fold func(acc, elem Value) Value

// AFold combines the n-element value array produced by And into a single
// combined value.
type AFold func(values []Value) Value

// Apply transforms a single parser result, used by the apply combinator.
type Apply func(Value) Value

// ApplyTo is Apply with an extra, caller-supplied context value, used by
// apply_to.
type ApplyTo func(Value, any) Value

// Lift produces a value with no input, used by lift, lift_val's cousins
// (the *_else family's empty-case) and pass/fail's siblings.
type Lift func() Value

// Satisfy tests whether a single byte should be accepted by the satisfy
// primitive.
type Satisfy func(byte) bool
