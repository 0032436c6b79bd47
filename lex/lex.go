// Package lex ships the standard lexical toolkit the original mpc.h calls
// its "Common Parsers" (mpc_space, mpc_digit, mpc_alpha, mpc_ident,
// mpc_int, mpc_float, mpc_string_lit, ...): small, named parsers built
// purely from the core combinators in package mpc, giving a grammar
// author the concrete vocabulary of character matchers they'd otherwise
// have to hand-roll from Range/OneOf/Satisfy every time. None of it adds
// evaluator logic; it is all composition.
package lex

import (
	"strconv"

	"github.com/fgeorgatos/mpc"
)

// Space matches a single space or tab character.
func Space() *mpc.Parser { return mpc.Expect(mpc.OneOf(" \t"), "space") }

// Spaces matches one or more spaces or tabs.
func Spaces() *mpc.Parser { return mpc.Expect(mpc.Many1(Space(), mpc.StrFold), "spaces") }

// Whitespace matches a single space, tab, newline, or carriage return.
func Whitespace() *mpc.Parser { return mpc.Expect(mpc.OneOf(" \t\n\r"), "whitespace") }

// Newline matches a single '\n'.
func Newline() *mpc.Parser { return mpc.Expect(mpc.Char('\n'), "newline") }

// Tab matches a single '\t'.
func Tab() *mpc.Parser { return mpc.Expect(mpc.Char('\t'), "tab") }

// Digit matches a single ASCII decimal digit.
func Digit() *mpc.Parser { return mpc.Expect(mpc.Range('0', '9'), "digit") }

// HexDigit matches a single ASCII hexadecimal digit.
func HexDigit() *mpc.Parser {
	return mpc.Expect(mpc.Or(mpc.Range('0', '9'), mpc.Range('a', 'f'), mpc.Range('A', 'F')), "hex digit")
}

// OctDigit matches a single ASCII octal digit.
func OctDigit() *mpc.Parser { return mpc.Expect(mpc.Range('0', '7'), "octal digit") }

// Digits matches one or more decimal digits.
func Digits() *mpc.Parser { return mpc.Expect(mpc.Many1(Digit(), mpc.StrFold), "digits") }

// HexDigits matches one or more hexadecimal digits.
func HexDigits() *mpc.Parser { return mpc.Expect(mpc.Many1(HexDigit(), mpc.StrFold), "hex digits") }

// OctDigits matches one or more octal digits.
func OctDigits() *mpc.Parser { return mpc.Expect(mpc.Many1(OctDigit(), mpc.StrFold), "octal digits") }

// Lower matches a single ASCII lowercase letter.
func Lower() *mpc.Parser { return mpc.Expect(mpc.Range('a', 'z'), "lowercase letter") }

// Upper matches a single ASCII uppercase letter.
func Upper() *mpc.Parser { return mpc.Expect(mpc.Range('A', 'Z'), "uppercase letter") }

// Alpha matches a single ASCII letter.
func Alpha() *mpc.Parser { return mpc.Expect(mpc.Or(Lower(), Upper()), "alpha") }

// Underscore matches a literal '_'.
func Underscore() *mpc.Parser { return mpc.Expect(mpc.Char('_'), "underscore") }

// AlphaNum matches a single ASCII letter, digit, or underscore.
func AlphaNum() *mpc.Parser {
	return mpc.Expect(mpc.Or(Alpha(), Digit(), Underscore()), "alphanumeric")
}

// IdentRaw matches a C-style identifier: [A-Za-z_][A-Za-z0-9_]*, with no
// Expect wrapper of its own — a failure's expected set is whatever Alpha
// and Underscore themselves report ("alpha", "underscore"), matching §8
// scenario 3's worked example for `"3bad"` exactly.
func IdentRaw() *mpc.Parser {
	return mpc.Also(mpc.Or(Alpha(), Underscore()), mpc.Many(AlphaNum(), mpc.StrFold), mpc.StrFold)
}

// Ident is IdentRaw wrapped in a single readable label, for grammar
// authors who want one "identifier" token description instead of the
// raw alternative set IdentRaw reports on failure.
func Ident() *mpc.Parser {
	return mpc.Expect(IdentRaw(), "identifier")
}

// Int matches an optionally-signed run of decimal digits, as a string
// (use the Int fold below to convert it).
func Int() *mpc.Parser {
	return mpc.Expect(mpc.Also(mpc.Maybe(mpc.Char('-')), Digits(), joinSignFold), "integer")
}

func joinSignFold(sign, digits mpc.Value) mpc.Value {
	s, _ := sign.(string)
	d, _ := digits.(string)
	return s + d
}

// Hex matches a "0x"-prefixed run of hex digits.
func Hex() *mpc.Parser {
	return mpc.Expect(mpc.Also(mpc.String("0x"), HexDigits(), mpc.StrFold), "hex literal")
}

// Oct matches a "0o"-prefixed run of octal digits.
func Oct() *mpc.Parser {
	return mpc.Expect(mpc.Also(mpc.String("0o"), OctDigits(), mpc.StrFold), "octal literal")
}

// Number is int | hex | oct, preferring the longer prefixed forms first.
func Number() *mpc.Parser { return mpc.Or(Hex(), Oct(), Int()) }

// Real matches a floating point literal without an exponent:
// int ( '.' digits )?.
func Real() *mpc.Parser {
	fraction := mpc.MaybeElse(mpc.Also(mpc.Char('.'), Digits(), mpc.StrFold), emptyString)
	return mpc.Expect(mpc.Also(Int(), fraction, mpc.StrFold), "real number")
}

// Float matches a floating point literal with an optional exponent:
// real ( [eE] [+-]? digits )?.
func Float() *mpc.Parser {
	sign := mpc.MaybeElse(mpc.OneOf("+-"), emptyString)
	mantissa := mpc.Also(sign, Digits(), mpc.StrFold)
	exp := mpc.MaybeElse(mpc.Also(mpc.OneOf("eE"), mantissa, mpc.StrFold), emptyString)
	return mpc.Expect(mpc.Also(Real(), exp, mpc.StrFold), "float")
}

func emptyString() mpc.Value { return "" }

// Semi, Comma, Colon, and Dot match the obvious single-character
// punctuation.
func Semi() *mpc.Parser  { return mpc.Expect(mpc.Char(';'), "semicolon") }
func Comma() *mpc.Parser { return mpc.Expect(mpc.Char(','), "comma") }
func Colon() *mpc.Parser { return mpc.Expect(mpc.Char(':'), "colon") }
func Dot() *mpc.Parser   { return mpc.Expect(mpc.Char('.'), "dot") }

// Escape matches a backslash followed by any single character, e.g. the
// body of a C-style escape sequence, without interpreting it.
func Escape() *mpc.Parser {
	return mpc.Expect(mpc.Also(mpc.Char('\\'), mpc.Any(), mpc.StrFold), "escape sequence")
}

// CharLit matches a single-quoted character literal, 'x' or '\x', and
// yields its raw source text including the quotes.
func CharLit() *mpc.Parser {
	body := mpc.Or(Escape(), mpc.SatisfyFn(func(b byte) bool { return b != '\'' && b != '\\' }))
	return mpc.Expect(mpc.And(mpc.AStrFold, mpc.Char('\''), body, mpc.Char('\'')), "character literal")
}

// StringLit matches a double-quoted string literal and yields its raw
// source text including the quotes.
func StringLit() *mpc.Parser {
	body := mpc.Many(mpc.Or(Escape(), mpc.SatisfyFn(func(b byte) bool { return b != '"' && b != '\\' })), mpc.StrFold)
	return mpc.Expect(mpc.And(mpc.AStrFold, mpc.Char('"'), body, mpc.Char('"')), "string literal")
}

// RegexLit matches a slash-delimited regex literal, /pattern/, and
// yields its raw source text including the slashes, as consumed by the
// grammar compiler's `/…/` character-class shorthand (§4.5).
func RegexLit() *mpc.Parser {
	body := mpc.Many(mpc.Or(Escape(), mpc.SatisfyFn(func(b byte) bool { return b != '/' && b != '\\' })), mpc.StrFold)
	return mpc.Expect(mpc.And(mpc.AStrFold, mpc.Char('/'), body, mpc.Char('/')), "regex literal")
}

// Int64 folds the string produced by Int into an int64, mpcf_int's Go
// analogue.
func Int64(v mpc.Value) mpc.Value {
	n, err := strconv.ParseInt(v.(string), 10, 64)
	if err != nil {
		return int64(0)
	}
	return n
}

// Float64 folds the string produced by Float/Real into a float64,
// mpcf_float's Go analogue.
func Float64(v mpc.Value) mpc.Value {
	f, err := strconv.ParseFloat(v.(string), 64)
	if err != nil {
		return float64(0)
	}
	return f
}

// Unescape folds a raw escape-sequence string ("\n", "\t", ...) produced
// by Escape into the single byte it denotes, mpcf_unescape's Go analogue.
func Unescape(v mpc.Value) mpc.Value {
	s := v.(string)
	if len(s) != 2 || s[0] != '\\' {
		return s
	}
	switch s[1] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	default:
		return string(s[1])
	}
}
