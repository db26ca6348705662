package cpu

import (
	"testing"

	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryOnBase(t *testing.T) {
	forEachParallelism(t, func(t *testing.T) {
		a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
		b := fromSlice(t, []float64{2, 4, 6, 8}, tensor.Shape{1, 2, 2})

		tests := []struct {
			op   BinaryOp
			want []float64
		}{
			{OpAdd, []float64{3, 6, 9, 12}},
			{OpSub, []float64{-1, -2, -3, -4}},
			{OpMul, []float64{2, 8, 18, 32}},
			{OpDiv, []float64{0.5, 0.5, 0.5, 0.5}},
		}

		for _, tt := range tests {
			got, err := Binary(a, b, tt.op)
			require.NoError(t, err, tt.op)
			assert.Equal(t, tensor.Shape{1, 2, 2}, got.Shape())
			assert.Equal(t, tt.want, got.Data(), tt.op)
		}
	})
}

func TestMulOnChippedViews(t *testing.T) {
	forEachParallelism(t, func(t *testing.T) {
		base := fromSlice(t, arange(16), tensor.Shape{2, 2, 2, 2})
		left := base.MustSlice(tensor.R(0, 2), tensor.R(0, 2), tensor.R(0, 2), tensor.I(0))
		right := base.MustSlice(tensor.I(0), tensor.R(0, 2), tensor.R(0, 2), tensor.R(0, 2))

		got, err := Mul(left, right)
		require.NoError(t, err)

		// [[[0, 2], [4, 6]], [[8, 10], [12, 14]]] * [[[0, 1], [2, 3]], [[4, 5], [6, 7]]]
		want := fromSlice(t, []float64{0, 2, 8, 18, 32, 50, 72, 98}, tensor.Shape{2, 2, 2})
		requireClose(t, want, got)
		assert.False(t, got.SharesBuffer(base))
	})
}

func TestAddSubDivWrappers(t *testing.T) {
	a := fromSlice(t, []int64{10, 20, 30}, tensor.Shape{3})
	b := fromSlice(t, []int64{1, 2, 3}, tensor.Shape{3})

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 22, 33}, sum.Data())

	diff, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 18, 27}, diff.Data())

	quo, err := Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 10, 10}, quo.Data())
}

func TestBinaryShapeMismatch(t *testing.T) {
	a := fromSlice(t, arange(6), tensor.Shape{2, 3})
	b := fromSlice(t, arange(6), tensor.Shape{3, 2})
	c := fromSlice(t, arange(6), tensor.Shape{6})

	_, err := Add(a, b)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = Mul(a, c)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = Sub(a.MustSlice(tensor.R(0, 1), tensor.R(0, 3)), a)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestScalarOnBase(t *testing.T) {
	forEachParallelism(t, func(t *testing.T) {
		x := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
		want := fromSlice(t, []float64{5, 10, 15, 20}, tensor.Shape{1, 2, 2})

		requireClose(t, want, MulScalar(x, 5))
		requireClose(t, want, ScalarMul(5, x))
	})
}

func TestScalarOnSlice(t *testing.T) {
	cube := fromSlice(t, arange(27), tensor.Shape{3, 3, 3})
	mat := cube.MustSlice(tensor.R(0, 2), tensor.R(0, 3), tensor.I(0))

	want := fromSlice(t, []float64{0, 15, 30, 45, 60, 75}, tensor.Shape{2, 3})
	requireClose(t, want, MulScalar(mat, 5))
	requireClose(t, want, ScalarMul(5, mat))
}

func TestScalarCommutesAndReverses(t *testing.T) {
	x := fromSlice(t, []float64{1, 2, 4}, tensor.Shape{3})

	requireClose(t, AddScalar(x, 3), ScalarAdd(3, x))
	requireClose(t, MulScalar(x, 3), ScalarMul(3, x))

	assert.Equal(t, []float64{-2, -1, 1}, SubScalar(x, 3).Data())
	assert.Equal(t, []float64{2, 1, -1}, ScalarSub(3, x).Data())
	assert.Equal(t, []float64{0.5, 1, 2}, DivScalar(x, 2).Data())
	assert.Equal(t, []float64{4, 2, 1}, ScalarDiv(4, x).Data())
}

func TestBinaryOpString(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "div", OpDiv.String())
	assert.Equal(t, "unknown", BinaryOp(42).String())
}
