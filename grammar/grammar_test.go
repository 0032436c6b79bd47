package grammar

import (
	"testing"

	"github.com/fgeorgatos/mpc"
	"github.com/fgeorgatos/mpc/ast"
	"github.com/fgeorgatos/mpc/lex"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNode(t *testing.T, p *mpc.Parser, input string) *ast.Node {
	t.Helper()
	v, err := mpc.ParseString("<test>", input, p, nil)
	require.Nil(t, err)
	n, ok := v.(*ast.Node)
	require.True(t, ok, "expected an *ast.Node, got %T", v)
	return n
}

func TestCompileStringLiteral(t *testing.T) {
	p, err := Compile(`"abc"`)
	require.Nil(t, err)

	n := runNode(t, p, "abc")
	assert.Equal(t, "string", n.Tag)
	assert.Equal(t, "abc", n.Contents)
}

func TestCompileCharLiteral(t *testing.T) {
	p, err := Compile(`'x'`)
	require.Nil(t, err)

	n := runNode(t, p, "x")
	assert.Equal(t, "char", n.Tag)
	assert.Equal(t, "x", n.Contents)
}

func TestCompileSequence(t *testing.T) {
	p, err := Compile(`"a" "b"`)
	require.Nil(t, err)

	n := runNode(t, p, "ab")
	assert.Equal(t, "string", n.Tag)
	assert.Equal(t, "a", n.Contents)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "b", n.Children[0].Contents)
}

func TestCompileAlternation(t *testing.T) {
	p, err := Compile(`"cat" | "dog"`)
	require.Nil(t, err)

	n := runNode(t, p, "dog")
	assert.Equal(t, "dog", n.Contents)

	_, perr := mpc.ParseString("<test>", "cow", p, nil)
	assert.NotNil(t, perr)
}

func TestCompileQuantifier(t *testing.T) {
	p, err := Compile(`"ab"*`)
	require.Nil(t, err)

	n := runNode(t, p, "ababab")
	assert.Equal(t, "ab", n.Contents)
	assert.Len(t, n.Children, 2)
}

func TestCompileIdentifierReference(t *testing.T) {
	number := mpc.New("number")
	mpc.Define(number, lex.Int())

	p, err := Compile(`<number>`, number)
	require.Nil(t, err)

	n := runNode(t, p, "42")
	assert.Equal(t, "number", n.Tag)
	assert.Equal(t, "42", n.Contents)
}

func TestCompileIdentifierReferencesShareBinding(t *testing.T) {
	digit := mpc.New("digit")
	mpc.Define(digit, lex.Digit())

	p, err := Compile(`<digit> <digit>`, digit)
	require.Nil(t, err)

	n := runNode(t, p, "12")
	assert.Equal(t, "digit", n.Tag)
	assert.Equal(t, "1", n.Contents)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "2", n.Children[0].Contents)
}

func TestCompileRegexLiteral(t *testing.T) {
	p, err := Compile(`/[a-z]+/`)
	require.Nil(t, err)

	n := runNode(t, p, "hello")
	assert.Equal(t, "regex", n.Tag)
	assert.Equal(t, "hello", n.Contents)
}

func TestCompileQuantifierZeroMatches(t *testing.T) {
	// A "*" or "?" group matching zero times folds in as a bare Go nil,
	// not a *ast.Node; a preceding non-nil sibling must tolerate that
	// instead of panicking on the type assertion.
	p, err := Compile(`"a" "b"*`)
	require.Nil(t, err)

	n := runNode(t, p, "a")
	assert.Equal(t, "a", n.Contents)
	assert.Empty(t, n.Children)
}

func TestCompileGrouping(t *testing.T) {
	p, err := Compile(`("a" | "b")+`)
	require.Nil(t, err)

	n := runNode(t, p, "aba")
	assert.Equal(t, "a", n.Contents)
	assert.Len(t, n.Children, 2)
}

func TestCompileUnknownIdentifier(t *testing.T) {
	_, err := Compile(`<missing>`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message(), "<grammar>")
}

func TestCompileBadRegexLiteral(t *testing.T) {
	_, err := Compile(`/(/`)
	require.NotNil(t, err)
}

func TestMustCompilePanicsOnBadSpec(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile(`<missing>`)
	})
}

func TestCompileErrorUnwrapsToParseError(t *testing.T) {
	_, err := Compile(`<missing>`)
	require.NotNil(t, err)

	cause := errors.Cause(err)
	pe, ok := cause.(*mpc.ParseError)
	require.True(t, ok, "errors.Cause must unwrap to the underlying *mpc.ParseError, got %T", cause)
	assert.Equal(t, err.ParseError, pe)
}

func TestCompileOptsTraces(t *testing.T) {
	log := logrus.New()
	p, err := CompileOpts(&Options{Trace: log}, `"a" "b"`)
	require.Nil(t, err)

	n := runNode(t, p, "ab")
	assert.Equal(t, "a", n.Contents)
}
