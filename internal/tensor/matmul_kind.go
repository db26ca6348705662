package tensor

import (
	"github.com/pkg/errors"
)

// MatMulKind identifies the algorithm used to multiply two arrays.
type MatMulKind int

// Matrix multiplication strategies, selected from the operands' declared
// rank, buffer rank and sliced-ness.
const (
	// VectorDot: both operands are unsliced rank-1 base arrays; the dot
	// product runs over the whole buffers.
	VectorDot MatMulKind = iota
	// SliceContraction: both operands are rank 1 and at least one is a
	// sliced view; axis 0 is contracted against axis 0.
	SliceContraction
	// DenseMatMul: both operands are unsliced rank-2 base arrays.
	DenseMatMul
	// GeneralContraction: both operands have rank >= 2 and are sliced or of
	// higher rank; the last axis of a is contracted against the first of b.
	GeneralContraction
)

// String returns a human-readable name for the strategy.
func (k MatMulKind) String() string {
	switch k {
	case VectorDot:
		return "vector-dot"
	case SliceContraction:
		return "slice-contraction"
	case DenseMatMul:
		return "dense-matmul"
	case GeneralContraction:
		return "general-contraction"
	default:
		return "unknown"
	}
}

// ScalarResult reports whether the strategy produces a scalar.
func (k MatMulKind) ScalarResult() bool {
	return k == VectorDot || k == SliceContraction
}

// dense reports whether the array views its whole buffer with no chips.
func (a *Array[T]) dense() bool {
	return !a.view.Sliced && a.Rank() == a.BufferRank()
}

// SelectMatMul chooses the multiplication strategy for a @ b.
// Mixing a rank-1 operand with a higher-rank one, or using a rank-0
// operand, is a shape mismatch.
func SelectMatMul[T Numeric](a, b *Array[T]) (MatMulKind, error) {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra == 1 && rb == 1:
		if a.dense() && b.dense() {
			return VectorDot, nil
		}
		return SliceContraction, nil
	case ra == 2 && rb == 2 && a.dense() && b.dense():
		return DenseMatMul, nil
	case ra >= 2 && rb >= 2:
		return GeneralContraction, nil
	default:
		return 0, errors.Wrapf(ErrShapeMismatch, "matmul: cannot multiply rank-%d by rank-%d", ra, rb)
	}
}
