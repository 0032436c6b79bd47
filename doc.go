// Package mpc implements a parser-combinator library for building parsers
// of textual languages by composing small parsers into larger ones.
//
// The value model is a tagged Parser node evaluated by a single recursive
// function, Run, against an input Cursor. Parsers are either anonymous,
// composed inline and owned by whoever builds the enclosing combinator, or
// retained: created with New and given a body later with Define, so that
// grammars can refer to a parser before its body exists. That is how
// recursive and mutually recursive grammars are expressed.
//
// Failed parses produce a *ParseError carrying the set of token
// descriptions that would have let parsing continue ("expected ... at
// line:col"); two errors reaching the same position are merged by
// unioning their expected sets, and the error at the greater offset wins
// otherwise (rightmost-failure rule).
//
// Subpackages layer on top of this core: ast provides a generic syntax
// tree plus folds so grammars can be composed without user callbacks,
// regex compiles a pattern string into a parser tree, grammar compiles a
// BNF-like grammar description into a parser tree producing ast.Nodes, lex
// ships a standard lexical toolkit built from the core combinators, and
// ioparse adds a file front end (there is no io.Reader variant).
package mpc
