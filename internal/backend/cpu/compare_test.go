package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCloseSelf(t *testing.T) {
	a := fromSlice(t, []float64{1, -2.5, 3e9, 0}, tensor.Shape{2, 2})

	for _, eps := range []float64{0, 1e-12, DefaultEpsilon, 1} {
		ok, err := AllClose(a, a, WithEpsilon(eps))
		require.NoError(t, err)
		assert.Truef(t, ok, "epsilon %g", eps)
	}
}

func TestAllCloseWithinTolerance(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []float64{1 + 1e-10, 2, 3 - 1e-10}, tensor.Shape{3})

	ok, err := AllClose(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = AllClose(a, b, WithEpsilon(1e-11))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompareReportsFirstMismatch(t *testing.T) {
	a := fromSlice(t, []float64{
		1, 2, 3,
		4, 5, 6,
	}, tensor.Shape{2, 3})
	b := fromSlice(t, []float64{
		1, 2, 3,
		4, 7, 0,
	}, tensor.Shape{2, 3})

	m, err := Compare(a, b)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, []int{1, 1}, m.Index)
	assert.InDelta(t, 2.0, m.AbsDiff, 1e-12)
	assert.InDelta(t, 2.0/7.0, m.RelDiff, 1e-12)
	assert.Equal(t, 5.0, m.Got)
	assert.Equal(t, 7.0, m.Want)
	assert.Equal(t, "mismatch at index [1, 1]: abs diff = 2, rel diff = 0.2857142857142857, values = 5 vs 7", m.Error())
}

func TestCompareIndexIsViewRelative(t *testing.T) {
	base := fromSlice(t, arange(9), tensor.Shape{3, 3})
	view := base.MustSlice(tensor.R(1, 3), tensor.R(1, 3)) // [[4, 5], [7, 8]]
	other := fromSlice(t, []float64{4, 5, 7, 9}, tensor.Shape{2, 2})

	m, err := Compare(view, other)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, []int{1, 1}, m.Index)
}

func TestCompareRelativeDiffOfZero(t *testing.T) {
	a := fromSlice(t, []float64{0}, tensor.Shape{1})
	b := fromSlice(t, []float64{0}, tensor.Shape{1})

	// Both zero: nothing to report, even with a zero tolerance.
	m, err := Compare(a, b, WithEpsilon(0))
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestCompareShapeMismatch(t *testing.T) {
	a := fromSlice(t, arange(6), tensor.Shape{2, 3})
	b := fromSlice(t, arange(6), tensor.Shape{3, 2})

	_, err := AllClose(a, b)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestCompareInvalidTolerance(t *testing.T) {
	a := fromSlice(t, arange(2), tensor.Shape{2})

	_, err := AllClose(a, a, WithEpsilon(-1))
	require.ErrorIs(t, err, ErrInvalidTolerance)
	_, err = AllClose(a, a, WithEpsilon(math.NaN()))
	require.ErrorIs(t, err, ErrInvalidTolerance)
}

func TestCompareIntegers(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []int64{1, 2, 4}, tensor.Shape{3})

	m, err := Compare(a, b)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, []int{2}, m.Index)
	assert.Equal(t, 1.0, m.AbsDiff)
}
