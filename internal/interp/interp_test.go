package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ps-lang/ps/internal/psval"
)

func run(t *testing.T, mode Mode, src string) (*Interpreter, string) {
	t.Helper()
	var buf bytes.Buffer
	it := New(mode, &buf)
	err := it.Run("", src)
	require.Nil(t, err, "%v", err)
	return it, buf.String()
}

func TestArithmetic(t *testing.T) {
	_, out := run(t, Dynamic, "2 3 add =")
	require.Equal(t, "5\n", out)
}

func TestStringHandleSharingDup(t *testing.T) {
	it, out := run(t, Dynamic, `(hello world) dup 0 (HELLO) putinterval = =`)
	require.Equal(t, "HELLO world\nHELLO world\n", out)
	require.Equal(t, 0, it.Operands.Depth())
}

func TestDictionaryScoping(t *testing.T) {
	_, out := run(t, Dynamic, `10 dict begin /x 42 def /y 100 def x y add = end`)
	require.Equal(t, "142\n", out)
}

func TestForLoop(t *testing.T) {
	_, out := run(t, Dynamic, `1 1 5 { = } for`)
	require.Equal(t, "1\n2\n3\n4\n5\n", out)
}

func TestLexicalVsDynamicScoping(t *testing.T) {
	src := `/a 1 def /p { a = } def 10 dict begin /a 2 def p end`

	_, lexOut := run(t, Lexical, src)
	require.Equal(t, "1\n", lexOut)

	_, dynOut := run(t, Dynamic, src)
	require.Equal(t, "2\n", dynOut)
}

// dup pop is a no-op, and so is begin end.
func TestIdempotence(t *testing.T) {
	it, _ := run(t, Dynamic, `1 2 3 dup pop`)
	require.Equal(t, 3, it.Operands.Depth())

	before := it.Dicts.Depth()
	require.Nil(t, it.Run("", `10 dict begin end`))
	require.Equal(t, before, it.Dicts.Depth())
}

// getinterval produces a view whose writes are visible in the parent.
func TestGetintervalSharesBuffer(t *testing.T) {
	_, out := run(t, Dynamic, `(hello world) dup 6 5 getinterval 0 (W) putinterval pop =`)
	require.Equal(t, "hello World\n", out)
}

func TestQuitStopsExecutionMidSequence(t *testing.T) {
	it, out := run(t, Dynamic, `1 = quit 2 =`)
	require.Equal(t, "1\n", out)
	require.True(t, it.Quit())
}

func TestQuitInsideProcedureUnwindsToTopLevel(t *testing.T) {
	it, out := run(t, Dynamic, `true { 1 = quit 2 = } if 3 =`)
	require.Equal(t, "1\n", out)
	require.True(t, it.Quit())
}

func TestStoppedCatchesErrors(t *testing.T) {
	_, out := run(t, Dynamic, `{ 1 0 div } stopped =`)
	require.Equal(t, "false\n", out)

	_, out = run(t, Dynamic, `{ 1 0 idiv } stopped =`)
	require.Equal(t, "true\n", out)
}

func TestDictFullError(t *testing.T) {
	var buf bytes.Buffer
	it := New(Dynamic, &buf)
	err := it.Run("", `1 dict begin /a 1 def /b 2 def end`)
	require.NotNil(t, err)
	require.Equal(t, psval.DictFull, err.Kind)
}

func TestUndefinedName(t *testing.T) {
	var buf bytes.Buffer
	it := New(Dynamic, &buf)
	err := it.Run("", `nosuchname`)
	require.NotNil(t, err)
	require.Equal(t, psval.Undefined, err.Kind)
}

func TestMarkCounttomarkCleartomark(t *testing.T) {
	it, _ := run(t, Dynamic, `1 2 mark 3 4 5 counttomark`)
	n, err := it.Operands.PopInteger("test")
	require.Nil(t, err)
	require.Equal(t, psval.Integer(3), n)

	it2, _ := run(t, Dynamic, `1 2 mark 3 4 5 cleartomark`)
	require.Equal(t, 2, it2.Operands.Depth())
}
