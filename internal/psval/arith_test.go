package psval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddCoercion(t *testing.T) {
	v, err := Add("add", Integer(2), Integer(3))
	require.Nil(t, err)
	require.Equal(t, Integer(5), v)

	v, err = Add("add", Integer(2), Real(3.5))
	require.Nil(t, err)
	require.Equal(t, Real(5.5), v)
}

func TestDivAlwaysReal(t *testing.T) {
	v, err := Div("div", Integer(10), Integer(2))
	require.Nil(t, err)
	require.Equal(t, Real(5), v)
}

func TestDivByZeroYieldsInf(t *testing.T) {
	v, err := Div("div", Integer(1), Integer(0))
	require.Nil(t, err)
	require.Equal(t, Real(math.Inf(1)), v)
}

func TestIdivTruncatesTowardZero(t *testing.T) {
	v, err := Idiv("idiv", Integer(-7), Integer(2))
	require.Nil(t, err)
	require.Equal(t, Integer(-3), v)
}

func TestIdivRequiresIntegers(t *testing.T) {
	_, err := Idiv("idiv", Real(7), Integer(2))
	require.NotNil(t, err)
	require.Equal(t, TypeCheck, err.Kind)
}

func TestModSignFollowsDividend(t *testing.T) {
	v, err := Mod("mod", Integer(-7), Integer(2))
	require.Nil(t, err)
	require.Equal(t, Integer(-1), v)
}

func TestSqrtRejectsNegative(t *testing.T) {
	_, err := Sqrt("sqrt", Integer(-4))
	require.NotNil(t, err)
	require.Equal(t, RangeCheck, err.Kind)
}

func TestSqrtAlwaysReal(t *testing.T) {
	v, err := Sqrt("sqrt", Integer(4))
	require.Nil(t, err)
	require.Equal(t, Real(2), v)
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	v, err := Round("round", Real(2.5))
	require.Nil(t, err)
	require.Equal(t, Real(3), v)

	v, err = Round("round", Real(-2.5))
	require.Nil(t, err)
	require.Equal(t, Real(-3), v)
}

func TestCeilingFloorPreserveIntegerIdentity(t *testing.T) {
	v, err := Ceiling("ceiling", Integer(4))
	require.Nil(t, err)
	require.Equal(t, Integer(4), v)

	v, err = Floor("floor", Integer(4))
	require.Nil(t, err)
	require.Equal(t, Integer(4), v)
}

func TestCompareStringsLexicographic(t *testing.T) {
	cmp, err := Compare("lt", NewString("abc"), NewString("abd"))
	require.Nil(t, err)
	require.Equal(t, -1, cmp)
}

func TestCompareNumericCrossType(t *testing.T) {
	cmp, err := Compare("lt", Integer(2), Real(2.5))
	require.Nil(t, err)
	require.Equal(t, -1, cmp)
}
