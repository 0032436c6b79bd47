package mpc

// Kind tags a Parser's variant, per §3 "Parser node": a tagged value, each
// tag one of the variants of §4.2. The evaluator (eval.go) dispatches on
// Kind with a single switch.
type Kind uint8

const (
	KindAny Kind = iota
	KindChar
	KindRange
	KindOneOf
	KindNoneOf
	KindSatisfy
	KindString
	KindPass
	KindFail
	KindLift
	KindLiftVal
	KindEOI
	KindSOI
	KindExpect
	KindApply
	KindApplyTo
	KindNot
	KindMaybe
	KindMany
	KindCount
	KindElse
	KindAlso
	KindAnd
	KindRetained
)

// Parser is a polymorphic parser node (§3). A node is either anonymous —
// built inline and absorbed into whatever combinator composes it — or
// retained: created by New, given stable pointer identity, and definable
// later by Define so that other parsers can refer to it before its body
// exists. That indirection is what makes recursive and mutually recursive
// grammars possible: the referencing parsers close over the *Parser
// pointer, and Define mutates the pointee in place.
type Parser struct {
	kind Kind
	name string // retained node's name, or a debug label for anonymous nodes

	// primitive operands
	ch      byte
	lo, hi  byte
	set     string
	negated bool // set by NoneOf; the evaluator dispatches on KindNoneOf
	pred    Satisfy
	str     string // string literal / fail message / expect label
	liftFn  Lift
	liftVal Value

	// combinator operands
	a, b     *Parser
	children []*Parser // n-ary and's operands

	fold    Fold
	lfold   Lift
	apply   Apply
	applyTo ApplyTo
	ctx     any
	afold   AFold
	n       int // count/and arity; Many1's minimum match count

	// retained lifecycle (§3 "Retained lifecycle")
	retained bool
	defined  bool
	body     *Parser
}

// New creates a retained parser node in the undefined state. Its body is
// supplied later by Define, which is what permits recursive references:
// other parsers may capture the returned pointer before the body exists.
func New(name string) *Parser {
	return &Parser{kind: KindRetained, name: name, retained: true}
}

// Define gives a retained parser its body. p stores body and keeps its own
// pointer identity; evaluating p evaluates body, so every existing
// reference to p sees the new behavior. Defining an already-defined parser, or a parser not created
// by New, is a usage error (§7) and panics in line with "assert in debug
// mode".
func Define(p, body *Parser) *Parser {
	if !p.retained {
		panic("mpc: Define called on a non-retained parser; use New first")
	}
	if p.defined {
		panic("mpc: Define called twice on " + p.name)
	}
	p.body = body
	p.defined = true
	return p
}

// Undefine severs a retained parser's body, breaking any reference cycle
// rooted at p. It does not need to be called for memory safety (the
// garbage collector reclaims unreachable parser graphs), but is kept to
// honor §3's documented lifecycle and to let tooling (e.g. a tree walker)
// that doesn't expect cycles sever them first.
func Undefine(p *Parser) {
	if !p.retained {
		panic("mpc: Undefine called on a non-retained parser")
	}
	p.body = nil
	p.defined = false
}

// Delete is a compatibility no-op: the garbage collector reclaims a
// parser graph once nothing references it. It exists only so that code
// ported from the documented lifecycle (§3, §6) still compiles and reads
// naturally; it performs no action.
func Delete(p *Parser) {}

// Cleanup undefines every listed retained parser then "deletes" them
// (Delete is a no-op, see above), matching the §3 convenience operation of
// the same name.
func Cleanup(parsers ...*Parser) {
	for _, p := range parsers {
		if p != nil && p.retained {
			Undefine(p)
		}
	}
	for _, p := range parsers {
		Delete(p)
	}
}

// Any succeeds consuming any one byte, failing only at end of input.
func Any() *Parser { return &Parser{kind: KindAny, name: "any"} }

// Char succeeds when the next byte equals c.
func Char(c byte) *Parser { return &Parser{kind: KindChar, ch: c, name: charLabel(c)} }

// Range succeeds when the next byte is in [lo, hi] inclusive.
func Range(lo, hi byte) *Parser {
	return &Parser{kind: KindRange, lo: lo, hi: hi, name: rangeLabel(lo, hi)}
}

// OneOf succeeds when the next byte appears in set.
func OneOf(set string) *Parser {
	return &Parser{kind: KindOneOf, set: set, name: "one of " + quote(set)}
}

// NoneOf succeeds when the next byte does not appear in set.
func NoneOf(set string) *Parser {
	return &Parser{kind: KindNoneOf, set: set, negated: true, name: "none of " + quote(set)}
}

// SatisfyFn succeeds when f reports true for the next byte.
func SatisfyFn(f Satisfy) *Parser {
	return &Parser{kind: KindSatisfy, pred: f, name: "satisfying predicate"}
}

// String succeeds when the next bytes equal t, literally.
func String(t string) *Parser {
	return &Parser{kind: KindString, str: t, name: quote(t)}
}

// Pass always succeeds with a nil value, consuming no input.
func Pass() *Parser { return &Parser{kind: KindPass, name: "pass"} }

// Fail always fails with msg as its sole expected label.
func Fail(msg string) *Parser { return &Parser{kind: KindFail, str: msg, name: msg} }

// LiftFn always succeeds consuming no input, with the value returned by f.
func LiftFn(f Lift) *Parser { return &Parser{kind: KindLift, liftFn: f, name: "lift"} }

// LiftVal always succeeds consuming no input, with value v.
func LiftVal(v Value) *Parser { return &Parser{kind: KindLiftVal, liftVal: v, name: "lift-val"} }

// EOI succeeds, consuming nothing, only at end of input.
func EOI() *Parser { return &Parser{kind: KindEOI, name: "end of input"} }

// SOI succeeds, consuming nothing, only at the very start of input.
func SOI() *Parser { return &Parser{kind: KindSOI, name: "start of input"} }

func charLabel(c byte) string  { return "'" + escapeByte(c) + "'" }
func quote(s string) string    { return "\"" + s + "\"" }
func rangeLabel(lo, hi byte) string {
	return "[" + escapeByte(lo) + "-" + escapeByte(hi) + "]"
}
