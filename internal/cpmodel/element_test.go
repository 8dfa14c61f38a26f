package cpmodel

import (
	"testing"

	"github.com/nextmv-io/sdk/mip"
	"github.com/stretchr/testify/require"
)

func TestBitsForZeroAndNegative(t *testing.T) {
	require.Equal(t, 1, bitsFor(0))
	require.Equal(t, 1, bitsFor(-3))
}

func TestBitsForCoversValue(t *testing.T) {
	nbits := bitsFor(10)
	require.GreaterOrEqual(t, 1<<uint(nbits), 10)
}

func TestElementIntBindsOutput(t *testing.T) {
	b := newBuilder()
	index := b.M.NewInt(0, 3)
	table := []int{5, 7, 9, 11}
	out := b.ElementInt(index, 0, 3, table)
	require.NotNil(t, out)
}

func TestBindElementIntAcceptsExistingVariable(t *testing.T) {
	b := newBuilder()
	index := b.M.NewInt(0, 2)
	out := b.M.NewInt(0, 100)
	require.NotPanics(t, func() {
		b.BindElementInt(index, 0, 2, []int{1, 2, 3}, out)
	})
}

func TestElementFlatBindsOutput(t *testing.T) {
	b := newBuilder()
	from := b.M.NewInt(0, 1)
	to := b.M.NewInt(0, 1)
	flat := []int{0, 4, 4, 0}
	out := b.ElementFlat(from, to, 2, flat)
	require.NotNil(t, out)
}

func TestElementVarBindsOutput(t *testing.T) {
	b := newBuilder()
	index := b.M.NewInt(0, 2)
	table := []mip.Int{b.M.NewInt(0, 50), b.M.NewInt(0, 50), b.M.NewInt(0, 50)}
	out := b.ElementVar(index, 0, 2, table, 50)
	require.NotNil(t, out)
}

func TestInSetReifiesMembership(t *testing.T) {
	b := newBuilder()
	x := b.M.NewInt(0, 5)
	z := b.InSet(x, 0, 5, []int{1, 3})
	require.NotNil(t, z)
}

func TestGreaterThanConstReturnsBoolean(t *testing.T) {
	b := newBuilder()
	x := b.M.NewInt(0, 10)
	z := b.GreaterThanConst(x, 4, 0, 10)
	require.NotNil(t, z)
}

func TestMaxOfAndMinOfReturnBoundedVariables(t *testing.T) {
	b := newBuilder()
	a := b.M.NewInt(0, 10)
	c := b.M.NewInt(0, 10)
	require.NotNil(t, b.MaxOf(0, 10, a, c))
	require.NotNil(t, b.MinOf(0, 10, a, c))
}

func TestProductBoolReturnsVariable(t *testing.T) {
	b := newBuilder()
	a := b.M.NewInt(0, 10)
	flag := b.M.NewBool()
	require.NotNil(t, b.ProductBool(a, 10, flag))
}

func TestProductIntReturnsVariable(t *testing.T) {
	b := newBuilder()
	a := b.M.NewInt(0, 10)
	y := b.M.NewInt(0, 20)
	require.NotNil(t, b.ProductInt(a, 10, y, 20))
}
