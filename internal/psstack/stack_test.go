package psstack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ps-lang/ps/internal/psval"
)

func TestPopEmptyUnderflows(t *testing.T) {
	s := New()
	_, err := s.Pop("pop")
	require.NotNil(t, err)
	require.Equal(t, psval.StackUnderflow, err.Kind)
}

func TestDupPopIsNoop(t *testing.T) {
	s := New()
	s.Push(psval.Integer(1))
	v, err := s.Peek(0)
	require.Nil(t, err)
	s.Push(v)
	_, err = s.Pop("pop")
	require.Nil(t, err)
	require.Equal(t, 1, s.Depth())
}

func TestPopNPreservesOrder(t *testing.T) {
	s := New()
	s.Push(psval.Integer(1))
	s.Push(psval.Integer(2))
	s.Push(psval.Integer(3))

	items, err := s.PopN("copy", 2)
	require.Nil(t, err)
	require.Equal(t, []psval.Value{psval.Integer(2), psval.Integer(3)}, items)
	require.Equal(t, 1, s.Depth())
}

func TestTypedPopTypecheck(t *testing.T) {
	s := New()
	s.Push(psval.NewString("hi"))
	_, err := s.PopInteger("x")
	require.NotNil(t, err)
	require.Equal(t, psval.TypeCheck, err.Kind)
}

func TestPopNameAcceptsBothForms(t *testing.T) {
	s := New()
	s.Push(psval.Name{Text: "a", Executable: true})
	n, err := s.PopName("def")
	require.Nil(t, err)
	require.Equal(t, "a", n.Text)

	s.Push(psval.Name{Text: "b", Executable: false})
	n, err = s.PopName("def")
	require.Nil(t, err)
	require.Equal(t, "b", n.Text)
}

func TestPeekDepthOutOfRange(t *testing.T) {
	s := New()
	s.Push(psval.Integer(1))
	_, err := s.Peek(3)
	require.NotNil(t, err)
}

func TestClear(t *testing.T) {
	s := New()
	s.Push(psval.Integer(1))
	s.Push(psval.Integer(2))
	s.Clear()
	require.Equal(t, 0, s.Depth())
}
