// Package ast implements the generic abstract syntax tree described in
// §4.3: a concrete tree type (tag, contents, children) plus the folds
// that let a grammar built with package grammar produce trees without any
// user-supplied callback. It is the "grammar-only" usage mode §2 names.
package ast

import (
	"strconv"
	"strings"
)

// Node is the concrete AST node of §3: a tag, contents, and an ordered
// list of children. By convention (not enforced) a leaf has no children
// and non-empty contents; an internal node has children and typically
// empty contents. Tags are '|'-separated hierarchical labels, e.g.
// "expr|number|regex", the rightmost segment being the most specific.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// New allocates a leaf (or, with an empty contents and children added
// later, an internal node under construction).
func New(tag, contents string) *Node {
	return &Node{Tag: tag, Contents: contents}
}

// AddChild appends child to parent's children in order.
func AddChild(parent, child *Node) {
	parent.Children = append(parent.Children, child)
}

// InsertRoot wraps n in a synthetic root whose tag is ">" and whose
// contents is empty, used to present a single top-level result when a
// grammar's top rule may itself produce more than one sibling node.
func InsertRoot(n *Node) *Node {
	root := New(">", "")
	AddChild(root, n)
	return root
}

// Tag sets a's tag in place and returns a, for fluent use inside folds
// that need to retag a node they just built (mpc_ast_tag's Go analogue).
func Tag(a *Node, tag string) *Node {
	a.Tag = tag
	return a
}

// MostSpecificTag returns the rightmost '|'-separated segment of n.Tag,
// the production or literal source that most specifically produced n.
func MostSpecificTag(n *Node) string {
	i := strings.LastIndexByte(n.Tag, '|')
	if i < 0 {
		return n.Tag
	}
	return n.Tag[i+1:]
}

// Equal is the structural equality of §4.3: tags and contents compare
// string-equal, and children compare pairwise equal in order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Contents != b.Contents {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Leaves returns n's leaf-level Contents, in left-to-right order. A node
// built by Fold/AFold may carry its own Contents *and* children at once
// (the first element of a sequence or repetition becomes the trunk node,
// later elements are added as its children without clearing its
// Contents); that own-Contents value is itself a leaf token and is
// reported before the children's, matching the left-to-right order in
// which Fold actually appended them.
func Leaves(n *Node) []string {
	if n == nil {
		return nil
	}
	var out []string
	if n.Contents != "" {
		out = append(out, n.Contents)
	}
	for _, c := range n.Children {
		out = append(out, Leaves(c)...)
	}
	return out
}

// String renders n using the §6 textual AST format: indentation by two
// spaces per depth, leaf lines as `<tag> 'contents'`, internal lines as
// `<tag>` (or `<tag> 'contents'` when the node also has non-empty
// Contents) followed by newline-indented children. This format is
// authoritative for round-trip tests (§8 "AST roundtrip").
func (n *Node) String() string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return b.String()
}

// Print is String, kept as its own method because §6 names the family of
// AST accessors as "a printer that writes an indented tree textually" —
// Print is the verb used there, String is the verb Go's fmt package
// expects; both produce byte-identical output.
func (n *Node) Print() string { return n.String() }

func writeNode(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(n.Tag)
	// A trunk-promoted node (the first element of a sequence or
	// repetition, per Fold) carries its own Contents *and* Children at
	// once; that Contents is itself a leaf token and is emitted here,
	// same as Leaves does, before its children follow on their own
	// indented lines.
	if n.Contents != "" || len(n.Children) == 0 {
		b.WriteString(" '")
		b.WriteString(n.Contents)
		b.WriteString("'")
	}
	for _, c := range n.Children {
		b.WriteString("\n")
		writeNode(b, c, depth+1)
	}
}

// Parse is the inverse of String for the subset of the format this
// package emits: given the authoritative textual form, it rebuilds the
// Node tree so printing then reparsing round-trips (§8 "AST roundtrip").
func Parse(text string) (*Node, error) {
	lines := strings.Split(text, "\n")
	n, _, err := parseLines(lines, 0, 0)
	return n, err
}

func parseLines(lines []string, i, depth int) (*Node, int, error) {
	line := lines[i]
	trimmed := strings.TrimLeft(line, " ")
	indent := len(line) - len(trimmed)
	if indent != depth*2 {
		return nil, i, &ParseFormatError{Line: i, Message: "unexpected indentation"}
	}

	// The line carries tag and (optionally) contents; children, if any,
	// follow on their own more-indented lines regardless of whether this
	// line itself was a quoted-contents line or a bare tag.
	tag := trimmed
	contents := ""
	if strings.HasSuffix(trimmed, "'") {
		tagEnd := strings.IndexByte(trimmed, ' ')
		if tagEnd < 0 {
			return nil, i, &ParseFormatError{Line: i, Message: "missing contents"}
		}
		tag = trimmed[:tagEnd]
		rest := trimmed[tagEnd+1:]
		open := strings.IndexByte(rest, '\'')
		if open < 0 || !strings.HasSuffix(rest, "'") {
			return nil, i, &ParseFormatError{Line: i, Message: "malformed contents"}
		}
		contents = rest[open+1 : len(rest)-1]
	}

	node := New(tag, contents)
	j := i + 1
	for j < len(lines) {
		childLine := strings.TrimLeft(lines[j], " ")
		childIndent := len(lines[j]) - len(childLine)
		if childIndent <= depth*2 {
			break
		}
		child, next, err := parseLines(lines, j, depth+1)
		if err != nil {
			return nil, j, err
		}
		AddChild(node, child)
		j = next
	}
	return node, j, nil
}

// ParseFormatError reports a malformed textual AST dump.
type ParseFormatError struct {
	Line    int
	Message string
}

func (e *ParseFormatError) Error() string {
	return "ast: line " + strconv.Itoa(e.Line) + ": " + e.Message
}
