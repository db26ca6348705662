package cpu

import (
	"slices"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// SliceContraction contracts axis 0 of a rank-1 view against axis 0 of
// another and returns the resulting scalar.
func SliceContraction[T tensor.Numeric](a, b *tensor.Array[T]) (T, error) {
	if a.Rank() != 1 || b.Rank() != 1 {
		return 0, errors.Wrapf(tensor.ErrShapeMismatch, "slice contraction: requires rank-1 operands, got rank %d and %d", a.Rank(), b.Rank())
	}
	out, err := Contract(a.Region(), b.Region(), 0, 0)
	if err != nil {
		return 0, err
	}
	return out.Data()[0], nil
}

// GeneralContraction contracts the last axis of a's view against the first
// axis of b's view. The result shape is a's remaining axes followed by b's.
func GeneralContraction[T tensor.Numeric](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	if a.Rank() < 2 || b.Rank() < 2 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "general contraction: requires rank >= 2 operands, got rank %d and %d", a.Rank(), b.Rank())
	}
	return Contract(a.Region(), b.Region(), a.Rank()-1, 0)
}

// Contract sums the product of ra and rb over axisA of ra and axisB of rb.
// The output holds ra's other axes followed by rb's other axes, in order;
// contracting two rank-1 regions yields a rank-0 Array with one element.
func Contract[T tensor.Numeric](ra, rb tensor.Region[T], axisA, axisB int) (*tensor.Array[T], error) {
	if axisA < 0 || axisA >= ra.Rank() || axisB < 0 || axisB >= rb.Rank() {
		return nil, errors.Wrapf(tensor.ErrIndexOutOfRange, "contract: axes (%d, %d) for ranks %d and %d", axisA, axisB, ra.Rank(), rb.Rank())
	}
	k := ra.Shape()[axisA]
	if rb.Shape()[axisB] != k {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "contract: axis %d of %v vs axis %d of %v", axisA, ra.Shape(), axisB, rb.Shape())
	}

	aFree := slices.Delete(ra.Shape().Clone(), axisA, axisA+1)
	bFree := slices.Delete(rb.Shape().Clone(), axisB, axisB+1)
	outShape := append(tensor.Shape{}, aFree...)
	outShape = append(outShape, bFree...)

	aData, bData := ra.Data(), rb.Data()
	aStep, bStep := ra.Strides()[axisA], rb.Strides()[axisB]
	out := make([]T, outShape.NumElements())

	parallel.ForChunks(len(out), func(start, end int) {
		idx := unravel(start, outShape)
		aIdx := make([]int, ra.Rank())
		bIdx := make([]int, rb.Rank())
		for p := start; p < end; p++ {
			scatter(aIdx, idx[:len(aFree)], axisA)
			scatter(bIdx, idx[len(aFree):], axisB)
			aPos, bPos := ra.Pos(aIdx...), rb.Pos(bIdx...)

			var sum T
			for kk := 0; kk < k; kk++ {
				sum += aData[aPos+kk*aStep] * bData[bPos+kk*bStep]
			}
			out[p] = sum
			advance(idx, outShape)
		}
	}, ParallelConfig())

	return tensor.Owned(out, outShape), nil
}

// unravel converts a row-major linear position to a multi-index.
func unravel(pos int, shape tensor.Shape) []int {
	idx := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 0 {
			return idx
		}
		idx[i] = pos % shape[i]
		pos /= shape[i]
	}
	return idx
}

// advance increments a row-major multi-index in place.
func advance(idx []int, shape tensor.Shape) {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return
		}
		idx[i] = 0
	}
}

// scatter writes free into dst around the contracted axis, which is set to 0.
func scatter(dst, free []int, axis int) {
	copy(dst[:axis], free[:axis])
	dst[axis] = 0
	copy(dst[axis+1:], free[axis:])
}
