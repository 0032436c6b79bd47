package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Node {
	root := New("sum", "")
	AddChild(root, New("number", "1"))
	AddChild(root, New("char", "+"))
	AddChild(root, New("number", "2"))
	return root
}

func TestNewAndAddChild(t *testing.T) {
	root := sample()
	assert.Equal(t, "sum", root.Tag)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "1", root.Children[0].Contents)
}

func TestInsertRoot(t *testing.T) {
	n := New("number", "42")
	wrapped := InsertRoot(n)
	assert.Equal(t, ">", wrapped.Tag)
	require.Len(t, wrapped.Children, 1)
	assert.Same(t, n, wrapped.Children[0])
}

func TestTagRetags(t *testing.T) {
	n := New("expr", "x")
	Tag(n, "expr|ident")
	assert.Equal(t, "expr|ident", n.Tag)
	assert.Equal(t, "ident", MostSpecificTag(n))
}

func TestMostSpecificTagWithNoSeparator(t *testing.T) {
	n := New("number", "1")
	assert.Equal(t, "number", MostSpecificTag(n))
}

func TestEqual(t *testing.T) {
	a := sample()
	b := sample()
	assert.True(t, Equal(a, b))

	b.Children[1].Contents = "-"
	assert.False(t, Equal(a, b))

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

func TestLeaves(t *testing.T) {
	root := sample()
	assert.Equal(t, []string{"1", "+", "2"}, Leaves(root))
}

func TestLeavesNestedTree(t *testing.T) {
	group := New("group", "")
	AddChild(group, New("char", "("))
	AddChild(group, sample())
	AddChild(group, New("char", ")"))

	assert.Equal(t, []string{"(", "1", "+", "2", ")"}, Leaves(group))
}

func TestLeavesOnNil(t *testing.T) {
	assert.Nil(t, Leaves(nil))
}

func TestStringAndParseRoundTrip(t *testing.T) {
	root := sample()
	text := root.String()

	parsed, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, Equal(root, parsed))
}

func TestStringAndParseRoundTripTrunkPromoted(t *testing.T) {
	// Fold's trunk promotion gives the first element of a sequence its
	// own Contents *and* Children at once — the shape TestCompileSequence
	// (package grammar) produces for every multi-token rule.
	root := New("string", "a")
	AddChild(root, New("string", "b"))

	text := root.String()
	assert.Equal(t, "string 'a'\n  string 'b'", text)

	parsed, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, Equal(root, parsed))
	assert.Equal(t, []string{"a", "b"}, Leaves(parsed))
}

func TestPrintIsAliasForString(t *testing.T) {
	n := New("number", "1")
	assert.Equal(t, n.String(), n.Print())
}

func TestParseLeaf(t *testing.T) {
	n, err := Parse(`number '42'`)
	require.NoError(t, err)
	assert.Equal(t, "number", n.Tag)
	assert.Equal(t, "42", n.Contents)
}

func TestParseMalformedIndentation(t *testing.T) {
	_, err := Parse("sum\n   number '1'")
	require.Error(t, err)
	var fmtErr *ParseFormatError
	assert.ErrorAs(t, err, &fmtErr)
}
