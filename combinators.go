package mpc

// Expect runs a; on failure, replaces the returned error's expected set
// with the single label given, improving the message a user sees.
func Expect(a *Parser, label string) *Parser {
	return &Parser{kind: KindExpect, a: a, str: label, name: label}
}

// ApplyFn runs a; on success, transforms its value through f.
func ApplyFn(a *Parser, f Apply) *Parser {
	return &Parser{kind: KindApply, a: a, apply: f, name: a.name}
}

// ApplyToFn runs a; on success, transforms its value through f with the
// extra context x.
func ApplyToFn(a *Parser, f ApplyTo, x any) *Parser {
	return &Parser{kind: KindApplyTo, a: a, applyTo: f, ctx: x, name: a.name}
}

// Not succeeds, consuming nothing, iff a fails. On success the value is
// nil.
func Not(a *Parser) *Parser {
	return &Parser{kind: KindNot, a: a, name: "not " + a.name}
}

// NotElse is Not, except its success value is lf() instead of nil.
func NotElse(a *Parser, lf Lift) *Parser {
	return &Parser{kind: KindNot, a: a, lfold: lf, name: "not " + a.name}
}

// Maybe runs a; on failure it restores the cursor and succeeds with nil
// instead of failing.
func Maybe(a *Parser) *Parser {
	return &Parser{kind: KindMaybe, a: a, name: "optional " + a.name}
}

// MaybeElse is Maybe, except its success-on-failure value is lf() instead
// of nil.
func MaybeElse(a *Parser, lf Lift) *Parser {
	return &Parser{kind: KindMaybe, a: a, lfold: lf, name: "optional " + a.name}
}

// Many matches a zero or more times, threading an accumulator through
// fold starting from nil. Repetition stops at the first failure of a that
// consumed no input since the last success; a failure of a that did
// consume input fails the whole repetition.
func Many(a *Parser, fold Fold) *Parser {
	return &Parser{kind: KindMany, a: a, fold: fold, name: a.name + " (zero or more)"}
}

// ManyElse is Many, except the initial accumulator is lf() instead of nil.
func ManyElse(a *Parser, fold Fold, lf Lift) *Parser {
	return &Parser{kind: KindMany, a: a, fold: fold, lfold: lf, name: a.name + " (zero or more)"}
}

// Many1 is Many additionally requiring at least one match.
func Many1(a *Parser, fold Fold) *Parser {
	return &Parser{kind: KindMany, a: a, fold: fold, n: 1, name: a.name + " (one or more)"}
}

// Count matches a exactly n times. On partial success — a stops matching
// before n repetitions — the whole repetition fails.
func Count(a *Parser, fold Fold, n int) *Parser {
	return &Parser{kind: KindCount, a: a, fold: fold, n: n, name: a.name}
}

// CountElse is Count, except on failure it succeeds with lf() instead of
// failing.
func CountElse(a *Parser, fold Fold, n int, lf Lift) *Parser {
	return &Parser{kind: KindCount, a: a, fold: fold, n: n, lfold: lf, name: a.name}
}

// Else runs a; if a fails without consuming input, runs b instead. If a
// fails after consuming input, Else fails without trying b (the
// committed-choice rule of §4.2). On total failure the two branches'
// errors are merged per §3.
func Else(a, b *Parser) *Parser {
	return &Parser{kind: KindElse, a: a, b: b, name: a.name + " or " + b.name}
}

// Or is an n-ary Else, equivalent to left-associating Else over ps.
func Or(ps ...*Parser) *Parser {
	if len(ps) == 0 {
		return Fail("anything")
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Else(out, p)
	}
	return out
}

// Also sequences a then b. If b fails, a's value is discarded and Also
// fails. On full success the combined value is fold(av, bv).
func Also(a, b *Parser, fold Fold) *Parser {
	return &Parser{kind: KindAlso, a: a, b: b, fold: fold, name: a.name + " then " + b.name}
}

// Bind is identical to Also; the name is kept, per §4.2, for symmetry
// with applicative/monadic combinator styles.
func Bind(a, b *Parser, fold Fold) *Parser {
	return Also(a, b, fold)
}

// And sequences n parsers. If the k-th fails, the sequence fails and all
// prior values are discarded. On full success afold combines the
// n-element value slice into the sequence's result.
func And(afold AFold, ps ...*Parser) *Parser {
	return &Parser{kind: KindAnd, children: ps, afold: afold, n: len(ps), name: "sequence"}
}
