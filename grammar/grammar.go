// Package grammar compiles a grammar-string describing identifiers,
// literals, sequencing, alternation, postfix repetition, and grouping
// (§4.5) into a single parser that produces package ast trees. Like
// package regex, it is self-hosted: the grammar string is itself parsed
// with the core combinators, and the values produced along the way are
// *mpc.Parser nodes rather than plain strings.
package grammar

import (
	"strings"

	"github.com/fgeorgatos/mpc"
	"github.com/fgeorgatos/mpc/ast"
	"github.com/fgeorgatos/mpc/lex"
	"github.com/fgeorgatos/mpc/regex"
)

// Supported syntax, per §4.5:
//
//	<name>           positional argument reference, resolved in order of
//	                 first appearance against the variadic arg list
//	/pattern/        character class, delegated to package regex
//	"literal"        string literal, with the common \n \t \r \\ \" \' \0
//	                 escapes interpreted
//	'x'              character literal, same escapes
//	a b              sequencing by juxtaposition
//	a | b            alternation, lowest precedence
//	a* a+ a?         postfix repetition
//	( a )            grouping
//
// Whitespace between tokens is insignificant.

// env carries the positional-argument bindings a single Compile call
// resolves <name> references against. The grammar levels built for that
// call close over env, so they cannot be shared across calls the way
// package regex's grammar is.
type env struct {
	args   []*mpc.Parser
	byName map[string]int
}

// Compile parses spec and returns a parser that produces *ast.Node values
// tagged by the construct that produced them (a literal's own tag, or the
// name under which its <ref> was written). Each distinct <name> in spec
// is bound, in left-to-right order of first appearance, to the next
// unused entry of args.
func Compile(spec string, args ...*mpc.Parser) (*mpc.Parser, *CompileError) {
	return CompileOpts(nil, spec, args...)
}

// CompileOpts is Compile with explicit Options, so the self-hosted
// grammar-of-grammars' own evaluation can be traced with Options.Trace the
// same way the core evaluator is — useful when a grammar spec loops or
// backtracks unexpectedly.
func CompileOpts(opts *Options, spec string, args ...*mpc.Parser) (*mpc.Parser, *CompileError) {
	byName := map[string]int{}
	for _, tok := range scanTokens(spec) {
		switch tok.kind {
		case tokIdent:
			if _, ok := byName[tok.text]; ok {
				continue
			}
			if len(byName) >= len(args) {
				return nil, newCompileError(specError(spec, tok.pos, "argument for <"+tok.text+">"))
			}
			byName[tok.text] = len(byName)
		case tokRegex:
			if _, err := regex.Compile(tok.text); err != nil {
				return nil, newCompileError(specError(spec, tok.pos, "valid regex /"+tok.text+"/ ("+err.Error()+")"))
			}
		}
	}

	e := &env{args: args, byName: byName}
	gr := buildGrammar(e)
	v, err := mpc.ParseString("<grammar>", spec, mpc.Total(gr.alt), opts.cfg())
	if err != nil {
		return nil, newCompileError(err)
	}
	return v.(*mpc.Parser), nil
}

// MustCompile is Compile, panicking on a malformed grammar string.
func MustCompile(spec string, args ...*mpc.Parser) *mpc.Parser {
	p, err := Compile(spec, args...)
	if err != nil {
		panic("grammar: " + err.Error())
	}
	return p
}

type grammar struct {
	alt     *mpc.Parser
	seq     *mpc.Parser
	postfix *mpc.Parser
	atom    *mpc.Parser
}

func buildGrammar(e *env) *grammar {
	gr := &grammar{
		alt:     mpc.New("alternation"),
		seq:     mpc.New("sequence"),
		postfix: mpc.New("quantified-atom"),
		atom:    mpc.New("atom"),
	}

	identRef := mpc.ApplyFn(mpc.Tok(mpc.Between(lex.Ident(), "<", ">")), e.resolveRef)
	stringAtom := mpc.ApplyFn(mpc.Tok(lex.StringLit()), literalAtom("string"))
	charAtom := mpc.ApplyFn(mpc.Tok(lex.CharLit()), literalAtom("char"))
	regexAtom := mpc.ApplyFn(mpc.Tok(lex.RegexLit()), regexAtomApply)
	group := mpc.TokParens(gr.alt)

	mpc.Define(gr.atom, mpc.Or(identRef, regexAtom, stringAtom, charAtom, group))

	star := mpc.ApplyFn(mpc.Sym("*"), func(mpc.Value) mpc.Value { return "*" })
	plus := mpc.ApplyFn(mpc.Sym("+"), func(mpc.Value) mpc.Value { return "+" })
	opt := mpc.ApplyFn(mpc.Sym("?"), func(mpc.Value) mpc.Value { return "?" })
	quant := mpc.MaybeElse(mpc.Or(star, plus, opt), func() mpc.Value { return "" })

	mpc.Define(gr.postfix, mpc.Also(gr.atom, quant, applyQuantifier))

	mpc.Define(gr.seq, mpc.Many1(gr.postfix, foldSeq))

	mpc.Define(gr.alt, mpc.Also(gr.seq, mpc.Many(mpc.Also(mpc.Sym("|"), gr.seq, mpc.Snd), foldAlt), foldAltStart))

	return gr
}

// resolveRef is e's *mpc.Apply for an identifier reference: it looks up
// the bound argument and wraps it so a successful match is presented as
// an ast.Node tagged with the reference's own name, whether or not the
// argument itself already produces ast nodes.
func (e *env) resolveRef(v mpc.Value) mpc.Value {
	name := v.(string)
	idx := e.byName[name]
	arg := e.args[idx]
	return mpc.ApplyFn(arg, wrapAsNode(name))
}

func wrapAsNode(tag string) mpc.Apply {
	return func(v mpc.Value) mpc.Value {
		if n, ok := v.(*ast.Node); ok {
			return ast.Tag(n, tag)
		}
		s, _ := v.(string)
		return ast.New(tag, s)
	}
}

// literalAtom builds the *mpc.Apply for a quoted literal: strip its
// delimiting quotes, interpret escapes, and compile it into a parser that
// matches the decoded text literally and tags the match.
func literalAtom(tag string) mpc.Apply {
	return func(v mpc.Value) mpc.Value {
		raw := v.(string)
		content := unescapeAll(raw[1 : len(raw)-1])
		return mpc.ApplyFn(mpc.String(content), ast.ApplyStr(tag))
	}
}

func regexAtomApply(v mpc.Value) mpc.Value {
	raw := v.(string)
	pattern := raw[1 : len(raw)-1]
	p, err := regex.Compile(pattern)
	if err != nil {
		// Already validated by scanTokens in Compile; reachable only if
		// that pre-pass and this parse somehow disagree on the pattern.
		return mpc.Fail("valid /" + pattern + "/")
	}
	return mpc.ApplyFn(p, ast.ApplyStr("regex"))
}

// applyQuantifier is postfix's fold: it wraps the atom's compiled parser
// in the AST-aware repetition matching the quantifier character, per
// ast.Mpca.
func applyQuantifier(atomVal, quantVal mpc.Value) mpc.Value {
	p := atomVal.(*mpc.Parser)
	switch quantVal.(string) {
	case "*":
		return ast.Mpca.Many(p)
	case "+":
		return ast.Mpca.Many1(p)
	case "?":
		return ast.Mpca.Maybe(p)
	default:
		return p
	}
}

// foldSeq builds, at compile time, the runtime parser that sequences acc
// then elem and folds their matched AST nodes together (ast.Fold, via
// ast.Mpca.Also): the first element in a juxtaposed run becomes the trunk
// node, later elements are added to it as children.
func foldSeq(acc, elem mpc.Value) mpc.Value {
	if acc == nil {
		return elem
	}
	return ast.Mpca.Also(acc.(*mpc.Parser), elem.(*mpc.Parser))
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

func unescapeAll(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '0':
				b.WriteByte(0)
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
