package ast

import "github.com/fgeorgatos/mpc"

// Fold is fold_ast (§4.3): if acc is nil, return x; otherwise add x as a
// child of acc and return acc. It threads an AST node through Many/Also
// without the caller ever naming a node type.
//
// x is nil (rather than a *Node) when it comes from a Many/Many1 repetition
// that matched zero times — Mpca.Many has no lfold, so a zero-match group
// folds in as plain nil. That carries no node to attach, not a malformed
// one, so it leaves acc untouched instead of panicking on the assertion.
func Fold(acc, x mpc.Value) mpc.Value {
	if acc == nil {
		return x
	}
	if x == nil {
		return acc
	}
	parent := acc.(*Node)
	AddChild(parent, x.(*Node))
	return parent
}

// AFold is afold_ast (§4.3): allocates an internal node and adds each
// element of xs as its child, in order. The node's tag is left empty —
// callers retag it with ApplyTag, mirroring mpc_ast_tag being called
// after mpcf_afold_ast in the original.
func AFold(xs []mpc.Value) mpc.Value {
	n := New("", "")
	for _, x := range xs {
		if x == nil {
			continue
		}
		AddChild(n, x.(*Node))
	}
	return n
}

// ApplyStr is apply_str_ast (§4.3): wraps a matched string in a leaf AST
// node tagged tag — "a tag derived from its originating parser" per
// §4.5, which in this port is simply the tag the grammar compiler already
// knows at the call site.
func ApplyStr(tag string) mpc.Apply {
	return func(v mpc.Value) mpc.Value {
		s, _ := v.(string)
		return New(tag, s)
	}
}

// ApplyTag retags whatever AST node a single parser produces, the fold
// analogue of mpc_ast_tag used right after And/AFold.
func ApplyTag(tag string) mpc.Apply {
	return func(v mpc.Value) mpc.Value {
		n, ok := v.(*Node)
		if !ok {
			return v
		}
		return Tag(n, tag)
	}
}

// Mpca wraps the core combinators with AST folds and AST-typed
// destructors fixed in place, per §4.3's description of the mpca_*
// family: users compose grammars without ever writing a callback.
// (Go's garbage collector makes the destructor half of that a no-op;
// only the fold half matters here.)
var Mpca = struct {
	Tag    func(a *mpc.Parser, tag string) *mpc.Parser
	Total  func(a *mpc.Parser) *mpc.Parser
	Not    func(a *mpc.Parser) *mpc.Parser
	Maybe  func(a *mpc.Parser) *mpc.Parser
	Many   func(a *mpc.Parser) *mpc.Parser
	Many1  func(a *mpc.Parser) *mpc.Parser
	Count  func(a *mpc.Parser, n int) *mpc.Parser
	Else   func(a, b *mpc.Parser) *mpc.Parser
	Also   func(a, b *mpc.Parser) *mpc.Parser
	Or     func(ps ...*mpc.Parser) *mpc.Parser
	And    func(ps ...*mpc.Parser) *mpc.Parser
}{
	Tag:   func(a *mpc.Parser, tag string) *mpc.Parser { return mpc.ApplyFn(a, ApplyTag(tag)) },
	Total: func(a *mpc.Parser) *mpc.Parser { return mpc.Total(a) },
	Not:   func(a *mpc.Parser) *mpc.Parser { return mpc.Not(a) },
	Maybe: func(a *mpc.Parser) *mpc.Parser { return mpc.Maybe(a) },
	Many:  func(a *mpc.Parser) *mpc.Parser { return mpc.Many(a, Fold) },
	Many1: func(a *mpc.Parser) *mpc.Parser { return mpc.Many1(a, Fold) },
	Count: func(a *mpc.Parser, n int) *mpc.Parser { return mpc.Count(a, Fold, n) },
	Else:  func(a, b *mpc.Parser) *mpc.Parser { return mpc.Else(a, b) },
	Also:  func(a, b *mpc.Parser) *mpc.Parser { return mpc.Also(a, b, Fold) },
	Or:    func(ps ...*mpc.Parser) *mpc.Parser { return mpc.Or(ps...) },
	And:   func(ps ...*mpc.Parser) *mpc.Parser { return mpc.And(AFold, ps...) },
}
