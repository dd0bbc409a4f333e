package psdict

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ps-lang/ps/internal/psval"
)

func TestStackNeverEmpty(t *testing.T) {
	sys := psval.NewDict(8)
	s := NewStack(sys)
	require.Equal(t, 1, s.Depth())
}

func TestEndCannotRemoveSystemDict(t *testing.T) {
	sys := psval.NewDict(8)
	s := NewStack(sys)
	err := s.Pop()
	require.NotNil(t, err)
	require.Equal(t, psval.DictStackUnderflow, err.Kind)
	require.Equal(t, 1, s.Depth())
}

func TestBeginEndIsNoop(t *testing.T) {
	sys := psval.NewDict(8)
	s := NewStack(sys)
	s.Push(psval.NewDict(4))
	require.Equal(t, 2, s.Depth())
	require.Nil(t, s.Pop())
	require.Equal(t, 1, s.Depth())
	require.Same(t, sys, s.Top())
}

func TestResolveSearchesTopDown(t *testing.T) {
	sys := psval.NewDict(8)
	require.NoError(t, sys.Define("x", psval.Integer(1)))
	s := NewStack(sys)

	user := psval.NewDict(8)
	require.NoError(t, user.Define("x", psval.Integer(2)))
	s.Push(user)

	v, d, err := s.Resolve("x")
	require.Nil(t, err)
	require.Equal(t, psval.Integer(2), v)
	require.Same(t, user, d)
}

func TestResolveUndefined(t *testing.T) {
	s := NewStack(psval.NewDict(8))
	_, _, err := s.Resolve("nope")
	require.NotNil(t, err)
	require.Equal(t, psval.Undefined, err.Kind)
}

func TestSnapshotSurvivesFurtherPushes(t *testing.T) {
	sys := psval.NewDict(8)
	s := NewStack(sys)
	snap := s.Snapshot()

	s.Push(psval.NewDict(4))
	require.Equal(t, 2, s.Depth())
	require.Len(t, snap, 1, "snapshot is a copy, unaffected by later pushes")
}

func TestSnapshotSeesLaterMutationsOfSameDict(t *testing.T) {
	sys := psval.NewDict(8)
	s := NewStack(sys)
	snap := s.Snapshot()

	require.NoError(t, sys.Define("x", psval.Integer(42)))

	v, ok := snap[0].Lookup("x")
	require.True(t, ok)
	require.Equal(t, psval.Integer(42), v)
}

func TestRestoreInstallsSnapshotWholesale(t *testing.T) {
	sys := psval.NewDict(8)
	s := NewStack(sys)
	lexEnv := psval.DictStackSnapshot{psval.NewDict(4)}

	caller := s.Snapshot()
	s.Restore(lexEnv)
	require.Equal(t, 1, s.Depth())
	require.Same(t, lexEnv[0], s.Top())

	s.Restore(caller)
	require.Same(t, sys, s.Top())
}
