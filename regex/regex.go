// Package regex compiles a regular-expression pattern string into an
// equivalent mpc.Parser tree, per §4.4. The compiler is itself built out
// of the core combinators in package mpc — it parses the pattern with an
// mpc grammar whose values are *mpc.Parser nodes, then folds those
// sub-parsers into the combinator that implements the pattern.
package regex

import (
	"github.com/fgeorgatos/mpc"
)

// Supported syntax, per §4.4:
//
//	literal characters, with \ escaping \n \t \r \\ \. \* \+ \? \| \( \) \[ \] \^ \$
//	.                dot, any byte except newline
//	[...] [^...]     character class, with a-z ranges; \ still escapes inside
//	^ $              start/end of input, accepted only at the very start/end of the
//	                 pattern; elsewhere they must be escaped
//	* + ?            postfix quantifiers: zero-or-more, one-or-more, optional
//	|                alternation, lowest precedence
//	(...)            grouping

// grammar holds the retained parsers of the self-hosted pattern grammar.
// They're built once and reused by every call to Compile.
type grammar struct {
	alt     *mpc.Parser
	seq     *mpc.Parser
	postfix *mpc.Parser
	atom    *mpc.Parser
	class   *mpc.Parser
}

var g = buildGrammar()

// Compile parses pattern and returns the equivalent parser tree. Errors
// in the pattern are reported as a *CompileError positioned in the
// pattern string itself, per §4.4/§7. Unlike a grammar-spec string, a
// pattern's whitespace is significant, so the whole pattern is required to
// match without the surrounding-whitespace stripping Total applies.
func Compile(pattern string) (*mpc.Parser, *CompileError) {
	return CompileOpts(pattern, nil)
}

// CompileOpts is Compile with an explicit *mpc.Config, so the self-hosted
// pattern grammar's own evaluation can be traced with Config.Trace the
// same way the core evaluator is — useful when a pattern loops or
// backtracks in a way that is otherwise invisible.
func CompileOpts(pattern string, cfg *mpc.Config) (*mpc.Parser, *CompileError) {
	v, err := mpc.ParseString("<regex>", pattern, mpc.Enclose(g.alt), cfg)
	if err != nil {
		return nil, newCompileError(err)
	}
	return v.(*mpc.Parser), nil
}

// MustCompile is Compile, panicking on a malformed pattern — for package-
// level var initializers the way regexp.MustCompile is used.
func MustCompile(pattern string) *mpc.Parser {
	p, err := Compile(pattern)
	if err != nil {
		panic("regex: " + err.Error())
	}
	return p
}

func buildGrammar() *grammar {
	gr := &grammar{
		alt:     mpc.New("alternation"),
		seq:     mpc.New("sequence"),
		postfix: mpc.New("quantified-atom"),
		atom:    mpc.New("atom"),
		class:   mpc.New("character-class"),
	}

	escapedChar := mpc.Also(mpc.Char('\\'), mpc.SatisfyFn(isEscapable), applyEscape)
	dot := mpc.ApplyFn(mpc.Char('.'), func(mpc.Value) mpc.Value { return mpc.NoneOf("\n") })
	startAnchor := mpc.ApplyFn(mpc.Also(mpc.SOI(), mpc.Char('^'), mpc.Snd), func(mpc.Value) mpc.Value { return mpc.SOI() })
	endAnchor := mpc.ApplyFn(mpc.Also(mpc.Char('$'), mpc.EOI(), mpc.Fst), func(mpc.Value) mpc.Value { return mpc.EOI() })
	group := mpc.Between(gr.alt, "(", ")")
	plainChar := mpc.ApplyFn(mpc.NoneOf(".\\*+?|()[]^$"), func(v mpc.Value) mpc.Value {
		return mpc.Char(v.(string)[0])
	})

	mpc.Define(gr.class, buildClass())

	mpc.Define(gr.atom, mpc.Or(
		startAnchor,
		endAnchor,
		escapedChar,
		gr.class,
		dot,
		group,
		plainChar,
	))

	star := mpc.ApplyFn(mpc.Char('*'), func(mpc.Value) mpc.Value { return quantify('*') })
	plus := mpc.ApplyFn(mpc.Char('+'), func(mpc.Value) mpc.Value { return quantify('+') })
	opt := mpc.ApplyFn(mpc.Char('?'), func(mpc.Value) mpc.Value { return quantify('?') })
	quant := mpc.MaybeElse(mpc.Or(star, plus, opt), func() mpc.Value { return quantify(0) })

	mpc.Define(gr.postfix, mpc.Also(gr.atom, quant, applyQuantifier))

	mpc.Define(gr.seq, mpc.Many1(gr.postfix, foldSeq))

	mpc.Define(gr.alt, mpc.Also(gr.seq, mpc.Many(mpc.Also(mpc.Char('|'), gr.seq, mpc.Snd), foldAlt), foldAltStart))

	return gr
}

// quantifier is a tiny byte type standing in for the postfix char so
// applyQuantifier doesn't need a second switch.
type quantifier byte

func quantify(b byte) quantifier { return quantifier(b) }

func applyQuantifier(atomVal, quantVal mpc.Value) mpc.Value {
	p := atomVal.(*mpc.Parser)
	switch quantVal.(quantifier) {
	case quantifier('*'):
		return mpc.Many(p, mpc.StrFold)
	case quantifier('+'):
		return mpc.Many1(p, mpc.StrFold)
	case quantifier('?'):
		return mpc.MaybeElse(p, mpc.LiftEmptyString)
	default:
		return p
	}
}

func foldSeq(acc, elem mpc.Value) mpc.Value {
	if acc == nil {
		return elem
	}
	return mpc.Also(acc.(*mpc.Parser), elem.(*mpc.Parser), mpc.StrFold)
}

func foldAltStart(seqVal, restVal mpc.Value) mpc.Value {
	out := seqVal.(*mpc.Parser)
	rest, _ := restVal.([]*mpc.Parser)
	for _, alt := range rest {
		out = mpc.Else(out, alt)
	}
	return out
}

func foldAlt(acc, elem mpc.Value) mpc.Value {
	list, _ := acc.([]*mpc.Parser)
	return append(list, elem.(*mpc.Parser))
}

func isEscapable(b byte) bool {
	switch b {
	case 'n', 't', 'r', '\\', '.', '*', '+', '?', '|', '(', ')', '[', ']', '^', '$':
		return true
	}
	return false
}

func applyEscape(_, b mpc.Value) mpc.Value {
	switch b.(string)[0] {
	case 'n':
		return mpc.Char('\n')
	case 't':
		return mpc.Char('\t')
	case 'r':
		return mpc.Char('\r')
	default:
		return mpc.Char(b.(string)[0])
	}
}

// buildClass returns the grammar for [...] / [^...] / a-z ranges. classChar
// always yields a byte value, whichever of its two alternatives matched.
//
// An item is a classChar optionally followed by "-classChar": parsing the
// low end greedily first and only then peeking for the dash sidesteps the
// committed-choice rule (And/Also never restore on failure), which would
// otherwise turn a lone "a" in "[abc]" into a dead end after failing to
// find "-" following it.
func buildClass() *mpc.Parser {
	classChar := mpc.Or(
		mpc.Also(mpc.Char('\\'), mpc.SatisfyFn(isEscapable), applyEscapeByte),
		mpc.ApplyFn(mpc.SatisfyFn(func(b byte) bool { return b != ']' && b != '\\' }), firstByte),
	)
	rangeTail := mpc.MaybeElse(mpc.Also(mpc.Char('-'), classChar, mpc.Snd), mpc.LiftNull)
	item := mpc.Also(classChar, rangeTail, classItemToPredicate)
	items := mpc.Many1(item, foldPredicates)
	negated := mpc.MaybeElse(mpc.Char('^'), mpc.LiftEmptyString)
	body := mpc.Also(negated, items, classApplyNegation)
	return mpc.Between(body, "[", "]")
}

func firstByte(v mpc.Value) mpc.Value { return v.(string)[0] }

func applyEscapeByte(_, b mpc.Value) mpc.Value {
	switch b.(string)[0] {
	case 'n':
		return byte('\n')
	case 't':
		return byte('\t')
	case 'r':
		return byte('\r')
	default:
		return b.(string)[0]
	}
}

// classItemToPredicate builds a single-byte or range predicate depending on
// whether rangeTail matched a "-classChar" suffix.
func classItemToPredicate(loVal, hiVal mpc.Value) mpc.Value {
	lo := loVal.(byte)
	if hiVal == nil {
		return mpc.Satisfy(func(b byte) bool { return b == lo })
	}
	hi := hiVal.(byte)
	return mpc.Satisfy(func(b byte) bool { return b >= lo && b <= hi })
}

func foldPredicates(acc, elem mpc.Value) mpc.Value {
	list, _ := acc.([]mpc.Satisfy)
	return append(list, elem.(mpc.Satisfy))
}

func classApplyNegation(negatedVal, predsVal mpc.Value) mpc.Value {
	preds := predsVal.([]mpc.Satisfy)
	matches := func(b byte) bool {
		for _, p := range preds {
			if p(b) {
				return true
			}
		}
		return false
	}
	negated := negatedVal.(string) != ""
	if negated {
		return mpc.SatisfyFn(func(b byte) bool { return !matches(b) })
	}
	return mpc.SatisfyFn(matches)
}
