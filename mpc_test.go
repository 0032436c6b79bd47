package mpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, p *Parser, input string) (Value, *ParseError) {
	t.Helper()
	return ParseString("<test>", input, p, nil)
}

func TestPrimitives(t *testing.T) {
	v, err := parse(t, Char('a'), "a")
	require.Nil(t, err)
	assert.Equal(t, "a", v)

	_, err = parse(t, Char('a'), "b")
	require.NotNil(t, err)
	assert.Contains(t, err.Expected(), "'a'")

	v, err = parse(t, Range('0', '9'), "5")
	require.Nil(t, err)
	assert.Equal(t, "5", v)

	v, err = parse(t, String("hello"), "hello world")
	require.Nil(t, err)
	assert.Equal(t, "hello", v)

	_, err = parse(t, EOI(), "x")
	require.NotNil(t, err)

	v, err = parse(t, EOI(), "")
	require.Nil(t, err)
	assert.Nil(t, v)
}

func TestNoConsumeOnFail(t *testing.T) {
	// String matches its whole literal atomically, so a mismatch never
	// consumes; Else is therefore free to try its second branch.
	p := Else(String("ab"), String("ac"))
	v, err := parse(t, p, "ac")
	require.Nil(t, err)
	assert.Equal(t, "ac", v)
}

func TestMaybeAlwaysRestores(t *testing.T) {
	// Maybe restores the cursor even when the wrapped parser consumed
	// input before failing, unlike Else/Also's committed-failure rule.
	inner := Also(Char('a'), Char('x'), Snd)
	p := Also(MaybeElse(inner, LiftEmptyString), String("ay"), Snd)

	v, err := parse(t, p, "ay")
	require.Nil(t, err)
	assert.Equal(t, "ay", v)
}

func TestManyAndMany1(t *testing.T) {
	v, err := parse(t, Many(Char('a'), StrFold), "aaab")
	require.Nil(t, err)
	assert.Equal(t, "aaa", v)

	v, err = parse(t, Many(Char('a'), StrFold), "bbb")
	require.Nil(t, err)
	assert.Nil(t, v)

	_, err = parse(t, Many1(Char('a'), StrFold), "bbb")
	require.NotNil(t, err)
}

func TestAlsoAndAnd(t *testing.T) {
	v, err := parse(t, Also(Char('a'), Char('b'), func(a, b Value) Value {
		return a.(string) + b.(string)
	}), "ab")
	require.Nil(t, err)
	assert.Equal(t, "ab", v)

	v, err = parse(t, And(AStrFold, Char('a'), Char('b'), Char('c')), "abc")
	require.Nil(t, err)
	assert.Equal(t, "abc", v)
}

func TestAlsoNeverRestoresOnFailure(t *testing.T) {
	// Also/And never restore on failure: a's consumed input stays consumed
	// even though the whole sequence fails.
	p := Else(Also(Char('a'), Char('x'), Snd), String("ab"))
	_, err := parse(t, p, "ab")
	require.NotNil(t, err, "committed Also must not fall through to the second Else branch")
}

func TestErrorRightmostWins(t *testing.T) {
	shallow := NewParseError("<test>", 1, 1, 0, 'x', false, "shallow")
	deep := NewParseError("<test>", 1, 2, 1, 'y', false, "deep")

	merged := Merge(shallow, deep)
	assert.Equal(t, deep, merged)

	merged = Merge(deep, shallow)
	assert.Equal(t, deep, merged)
}

func TestErrorMergeAtEqualOffsetUnionsExpected(t *testing.T) {
	a := NewParseError("<test>", 1, 1, 0, 'x', false, "a")
	b := NewParseError("<test>", 1, 1, 0, 'x', false, "b")

	merged := Merge(a, b)
	assert.ElementsMatch(t, []string{"a", "b"}, merged.Expected())
}

func TestCommittedChoiceDoesNotMergeAcrossConsumedBranch(t *testing.T) {
	// Once a branch consumes input before failing, Else never runs the
	// other branch, so the reported error is that branch's alone.
	deep := Also(Char('a'), Fail("deep"), Snd)
	_, err := parse(t, Else(deep, Fail("shallow")), "a")
	require.NotNil(t, err)
	assert.Equal(t, 1, err.Offset)
	assert.Contains(t, err.Expected(), "deep")
	assert.NotContains(t, err.Expected(), "shallow")
}

func TestAlternationErrorMerge(t *testing.T) {
	p := Or(Char('a'), Char('b'), Char('c'))
	_, err := parse(t, p, "d")
	require.NotNil(t, err)
	assert.ElementsMatch(t, []string{"'a'", "'b'", "'c'"}, err.Expected())
}

func TestRecursiveGrammar(t *testing.T) {
	// balanced parens: S = '(' S ')' | empty
	s := New("s")
	inner := Also(Also(Char('('), s, Snd), Char(')'), Fst)
	Define(s, Else(inner, LiftFn(LiftEmptyString)))

	_, err := parse(t, Enclose(s), "((()))")
	require.Nil(t, err)

	_, err = parse(t, Enclose(s), "((())")
	require.NotNil(t, err)
}

func TestRecursionLimitIsReported(t *testing.T) {
	e := New("e")
	Define(e, Also(e, Char('x'), Snd))

	cfg := &Config{MaxDepth: 8}
	_, err := ParseString("<test>", "xxxxxxxxxxx", Enclose(e), cfg)
	require.NotNil(t, err)
	assert.Contains(t, err.Message(), "recursion")
}

func TestDefineTwicePanics(t *testing.T) {
	p := New("p")
	Define(p, Char('a'))
	assert.Panics(t, func() { Define(p, Char('b')) })
}

func TestDefineOnNonRetainedPanics(t *testing.T) {
	assert.Panics(t, func() { Define(Char('a'), Char('b')) })
}

func TestDerivedCombinators(t *testing.T) {
	v, err := parse(t, Total(String("abc")), "  abc  ")
	require.Nil(t, err)
	assert.Equal(t, "abc", v)

	v, err = parse(t, Parens(String("x")), "(x)")
	require.Nil(t, err)
	assert.Equal(t, "x", v)

	_, err = parse(t, Enclose(String("abc")), "abcd")
	require.NotNil(t, err)
}

func TestErrorMessageFormat(t *testing.T) {
	_, err := parse(t, Char('a'), "")
	require.NotNil(t, err)
	assert.Equal(t, `<test>:1:1: error: expected 'a' at 'end of input'`, err.Message())
}

func TestCleanupUndefines(t *testing.T) {
	p := New("p")
	Define(p, Char('a'))
	Cleanup(p)
	// Cleanup undefines p, so it can be given a fresh body afterward.
	assert.NotPanics(t, func() { Define(p, Char('b')) })
	v, err := parse(t, p, "b")
	require.Nil(t, err)
	assert.Equal(t, "b", v)
}
