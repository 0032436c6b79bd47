package grammar

import "github.com/fgeorgatos/mpc"

// This file holds the lightweight pre-pass Compile uses to report
// construction failures (unresolvable <name>, bad /regex/) positioned in
// the spec string, per §7 ("surfaces as a parse failure of the compiler,
// with position inside the spec string"). The pre-pass is a plain byte
// scan, not a combinator grammar: it only needs to find token boundaries
// well enough to validate, while the real combinator grammar in
// buildGrammar does the actual parsing and AST construction.

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokRegex
)

type specToken struct {
	kind tokenKind
	text string
	pos  int
}

// scanTokens finds every <ident> and /regex/ token in spec, skipping over
// string and character literal bodies so a stray '<' or '/' inside a
// quoted literal is never mistaken for one.
func scanTokens(spec string) []specToken {
	var out []specToken
	i := 0
	for i < len(spec) {
		switch spec[i] {
		case '<':
			if j, ok := scanIdent(spec, i+1); ok {
				out = append(out, specToken{tokIdent, spec[i+1 : j], i})
				i = j + 1
				continue
			}
		case '/':
			if j, ok := scanDelimited(spec, i+1, '/'); ok {
				out = append(out, specToken{tokRegex, spec[i+1 : j], i})
				i = j + 1
				continue
			}
		case '"':
			if j, ok := scanDelimited(spec, i+1, '"'); ok {
				i = j + 1
				continue
			}
		case '\'':
			if j, ok := scanDelimited(spec, i+1, '\''); ok {
				i = j + 1
				continue
			}
		}
		i++
	}
	return out
}

// scanIdent matches [A-Za-z_][A-Za-z0-9_]* starting at i, then requires a
// closing '>'. It returns the index of that '>' and ok=true on a match.
func scanIdent(spec string, i int) (int, bool) {
	start := i
	for i < len(spec) && isIdentByte(spec[i], i == start) {
		i++
	}
	if i == start || i >= len(spec) || spec[i] != '>' {
		return 0, false
	}
	return i, true
}

func isIdentByte(b byte, first bool) bool {
	switch {
	case b == '_':
		return true
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return !first
	}
	return false
}

// scanDelimited scans up to (and returns the index of) the next
// unescaped occurrence of delim starting at i. ok is false if delim is
// never found.
func scanDelimited(spec string, i int, delim byte) (int, bool) {
	for i < len(spec) {
		if spec[i] == '\\' && i+1 < len(spec) {
			i += 2
			continue
		}
		if spec[i] == delim {
			return i, true
		}
		i++
	}
	return 0, false
}

// specError builds a *mpc.ParseError positioned at byte offset idx of
// spec, the grammar-compiler's own construction-failure error per §7.
func specError(spec string, idx int, label string) *mpc.ParseError {
	line, col := 1, 1
	for i := 0; i < idx && i < len(spec); i++ {
		if spec[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	atEOI := idx >= len(spec)
	var unexpected byte
	if !atEOI {
		unexpected = spec[idx]
	}
	return mpc.NewParseError("<grammar>", line, col, idx, unexpected, atEOI, label)
}
