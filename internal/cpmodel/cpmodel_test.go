package cpmodel

import (
	"testing"

	"github.com/nextmv-io/sdk/mip"
	"github.com/stretchr/testify/require"
)

func newBuilder() *Builder {
	return New(mip.NewModel())
}

func TestBoundOfFloorsToOne(t *testing.T) {
	require.Equal(t, 2.0, boundOf(0))
	require.Equal(t, 2.0, boundOf(-5))
	require.Equal(t, 11.0, boundOf(10))
}

func TestTConstructsTerm(t *testing.T) {
	b := newBuilder()
	x := b.M.NewBool()
	term := T(3.5, x)
	require.Equal(t, 3.5, term.Coef)
	require.Equal(t, x, term.Var)
}

func TestAndReturnsDistinctBoolean(t *testing.T) {
	b := newBuilder()
	x, y := b.M.NewBool(), b.M.NewBool()
	z := b.And("test", x, y)
	require.NotNil(t, z)
	require.NotEqual(t, x, z)
	require.NotEqual(t, y, z)
}

func TestOrDelegatesThroughDeMorgan(t *testing.T) {
	b := newBuilder()
	x, y := b.M.NewBool(), b.M.NewBool()
	z := b.Or("test", x, y)
	require.NotNil(t, z)
}

func TestNegReturnsComplementVariable(t *testing.T) {
	b := newBuilder()
	x := b.M.NewBool()
	nx := b.Neg(x)
	require.NotEqual(t, x, nx)
}

func TestNotReturnsNegativeUnitTerm(t *testing.T) {
	b := newBuilder()
	x := b.M.NewBool()
	term := Not(x)
	require.Equal(t, -1.0, term.Coef)
	require.Equal(t, x, term.Var)
}

func TestEqualIntReturnsBoolean(t *testing.T) {
	b := newBuilder()
	x := b.M.NewInt(0, 5)
	z := b.EqualInt("eq", x, 3, 0, 5)
	require.NotNil(t, z)
}

func TestEqualVarsDelegatesToEqualExpr(t *testing.T) {
	b := newBuilder()
	x := b.M.NewInt(0, 5)
	y := b.M.NewInt(0, 5)
	z := b.EqualVars("eq", x, y, 5)
	require.NotNil(t, z)
}

func TestFixPinsBooleanWithEqualityConstraint(t *testing.T) {
	b := newBuilder()
	x := b.M.NewBool()
	require.NotPanics(t, func() { b.Fix(x, 1) })
}

func TestFix0PinsIntToZero(t *testing.T) {
	b := newBuilder()
	x := b.M.NewInt(0, 10)
	require.NotPanics(t, func() { b.Fix0(x) })
}

func TestImplyEqualPostsBothHalves(t *testing.T) {
	b := newBuilder()
	cond := b.M.NewBool()
	x := b.M.NewInt(0, 10)
	require.NotPanics(t, func() {
		b.ImplyEqual(cond, 4, 10, T(1, x))
	})
}

func TestLabelsAreUniquePerPrefix(t *testing.T) {
	b := newBuilder()
	first := b.label("route")
	second := b.label("route")
	require.NotEqual(t, first, second)
}
