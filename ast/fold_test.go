package ast

import (
	"testing"

	"github.com/fgeorgatos/mpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldThreadsChildren(t *testing.T) {
	var acc mpc.Value
	acc = Fold(acc, New("number", "1"))
	acc = Fold(acc, New("char", "+"))
	acc = Fold(acc, New("number", "2"))

	root := acc.(*Node)
	assert.Equal(t, "number", root.Tag)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "+", root.Children[0].Contents)
}

func TestFoldToleratesNilElement(t *testing.T) {
	// A zero-match Many/Many1 repetition folds in as plain nil, the
	// signature of "this sibling group matched nothing" rather than a
	// malformed node; Fold must leave acc untouched rather than panic.
	acc := Fold(New("number", "1"), nil)
	assert.Equal(t, New("number", "1"), acc)
}

func TestFoldWithNilAccAndNilElement(t *testing.T) {
	assert.Nil(t, Fold(nil, nil))
}

func TestAFoldBuildsUntaggedParent(t *testing.T) {
	v := AFold([]mpc.Value{New("number", "1"), New("char", "+"), New("number", "2")})
	n := v.(*Node)
	assert.Equal(t, "", n.Tag)
	require.Len(t, n.Children, 3)
}

func TestAFoldSkipsNil(t *testing.T) {
	v := AFold([]mpc.Value{New("char", "+"), nil, New("number", "2")})
	n := v.(*Node)
	require.Len(t, n.Children, 2)
}

func TestApplyStr(t *testing.T) {
	apply := ApplyStr("number")
	v := apply("42")
	n := v.(*Node)
	assert.Equal(t, "number", n.Tag)
	assert.Equal(t, "42", n.Contents)
}

func TestApplyTag(t *testing.T) {
	n := New("expr", "x")
	v := ApplyTag("expr|ident")(n)
	assert.Equal(t, "expr|ident", v.(*Node).Tag)
}

func TestApplyTagOnNonNodePassesThrough(t *testing.T) {
	v := ApplyTag("whatever")("raw string")
	assert.Equal(t, "raw string", v)
}

func TestMpcaMany(t *testing.T) {
	digit := mpc.ApplyFn(mpc.Range('0', '9'), ApplyStr("digit"))
	p := Mpca.Many(digit)

	v, err := mpc.ParseString("<test>", "123", p, nil)
	require.Nil(t, err)
	root := v.(*Node)
	assert.Equal(t, []string{"1", "2", "3"}, Leaves(root))
}

func TestMpcaAlso(t *testing.T) {
	a := mpc.ApplyFn(mpc.Char('a'), ApplyStr("a"))
	b := mpc.ApplyFn(mpc.Char('b'), ApplyStr("b"))
	p := Mpca.Also(a, b)

	v, err := mpc.ParseString("<test>", "ab", p, nil)
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, Leaves(v.(*Node)))
}

func TestMpcaOr(t *testing.T) {
	a := mpc.ApplyFn(mpc.Char('a'), ApplyStr("a"))
	b := mpc.ApplyFn(mpc.Char('b'), ApplyStr("b"))
	p := Mpca.Or(a, b)

	v, err := mpc.ParseString("<test>", "b", p, nil)
	require.Nil(t, err)
	assert.Equal(t, "b", v.(*Node).Contents)
}

func TestMpcaAnd(t *testing.T) {
	a := mpc.ApplyFn(mpc.Char('a'), ApplyStr("a"))
	b := mpc.ApplyFn(mpc.Char('b'), ApplyStr("b"))
	c := mpc.ApplyFn(mpc.Char('c'), ApplyStr("c"))
	p := Mpca.And(a, b, c)

	v, err := mpc.ParseString("<test>", "abc", p, nil)
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, Leaves(v.(*Node)))
}
