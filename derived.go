package mpc

// This file gives the "useful" derived parsers of §4.2 their literal
// expansions. None of them need new evaluator support: they're built
// entirely out of the combinators in combinators.go.

// whitespaceClass is the byte class used by Strip/Tok's whitespace-
// skipping, matching mpc_whitespace's " \t\n\r" (package lex ships the
// full, named lexical toolkit; this one is kept private since it is only
// ever used to build Strip/Tok/Sym).
var whitespaceClass = OneOf(" \t\n\r")

func skipWhitespace() *Parser {
	return Many(whitespaceClass, DropFold)
}

// Start succeeds only when a succeeds starting at the very beginning of
// input: start(a) = also(soi, a, Snd).
func Start(a *Parser) *Parser {
	return Also(SOI(), a, Snd)
}

// End succeeds only when a succeeds and is immediately followed by end of
// input: end(a) = also(a, eoi, Fst).
func End(a *Parser) *Parser {
	return Also(a, EOI(), Fst)
}

// Enclose requires a to match the entire input, start to end:
// enclose(a) = start(end(a)).
func Enclose(a *Parser) *Parser {
	return Start(End(a))
}

// Strip skips leading and trailing whitespace around a:
// strip(a) = also(also(whitespace, a, Snd), whitespace, Fst).
func Strip(a *Parser) *Parser {
	return Also(Also(skipWhitespace(), a, Snd), skipWhitespace(), Fst)
}

// Tok matches a then consumes any trailing whitespace, discarding it:
// tok(a) = also(a, whitespace, Fst).
func Tok(a *Parser) *Parser {
	return Also(a, skipWhitespace(), Fst)
}

// Sym is Tok(String(s)), the common case of a whitespace-trailing literal.
func Sym(s string) *Parser {
	return Tok(String(s))
}

// Total requires a, stripped of surrounding whitespace, to match the
// entire input: total(a) = enclose(strip(a)).
func Total(a *Parser) *Parser {
	return Enclose(Strip(a))
}

// Between matches a surrounded by literal open/close delimiters, folding
// away the delimiters' values: also(also(string(open), a, Snd), string(close), Fst).
func Between(a *Parser, open, close string) *Parser {
	return Also(Also(String(open), a, Snd), String(close), Fst)
}

// Parens, Braces, Brackets, and Squares are Between with the obvious
// delimiter pairs.
func Parens(a *Parser) *Parser   { return Between(a, "(", ")") }
func Braces(a *Parser) *Parser   { return Between(a, "{", "}") }
func Brackets(a *Parser) *Parser { return Between(a, "[", "]") }
func Squares(a *Parser) *Parser  { return Between(a, "<", ">") }

// TokBetween is Between with each delimiter wrapped in Tok, so trailing
// whitespace after either delimiter is consumed for free.
func TokBetween(a *Parser, open, close string) *Parser {
	return Also(Also(Sym(open), a, Snd), Sym(close), Fst)
}

func TokParens(a *Parser) *Parser   { return TokBetween(a, "(", ")") }
func TokBraces(a *Parser) *Parser   { return TokBetween(a, "{", "}") }
func TokBrackets(a *Parser) *Parser { return TokBetween(a, "[", "]") }
func TokSquares(a *Parser) *Parser  { return TokBetween(a, "<", ">") }

// SkipMany is Many whose fold discards every element's value.
func SkipMany(a *Parser) *Parser { return Many(a, DropFold) }

// SkipMany1 is Many1 whose fold discards every element's value.
func SkipMany1(a *Parser) *Parser { return Many1(a, DropFold) }
