package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// BinaryOp is an elementwise arithmetic operator.
type BinaryOp int

// Supported elementwise operators.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator name.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "unknown"
	}
}

// Add returns a + b elementwise.
func Add[T tensor.Numeric](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return Binary(a, b, OpAdd)
}

// Sub returns a - b elementwise.
func Sub[T tensor.Numeric](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return Binary(a, b, OpSub)
}

// Mul returns a * b elementwise.
func Mul[T tensor.Numeric](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return Binary(a, b, OpMul)
}

// Div returns a / b elementwise.
// Integer division by zero panics, as in Go.
func Div[T tensor.Numeric](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return Binary(a, b, OpDiv)
}

// Binary applies op elementwise to the views of a and b.
// Both views must have the same declared rank and extents; the result is a
// new base Array of that shape.
func Binary[T tensor.Numeric](a, b *tensor.Array[T], op BinaryOp) (*tensor.Array[T], error) {
	if err := checkSameShape(op.String(), a, b); err != nil {
		return nil, err
	}

	ra, rb := a.Region(), b.Region()
	x, y := ra.Values(), rb.Values()
	out := make([]T, len(x))

	switch op {
	case OpAdd:
		parallel.ForChunks(len(out), func(s, e int) {
			for i := s; i < e; i++ {
				out[i] = x[i] + y[i]
			}
		}, ParallelConfig())
	case OpSub:
		parallel.ForChunks(len(out), func(s, e int) {
			for i := s; i < e; i++ {
				out[i] = x[i] - y[i]
			}
		}, ParallelConfig())
	case OpMul:
		parallel.ForChunks(len(out), func(s, e int) {
			for i := s; i < e; i++ {
				out[i] = x[i] * y[i]
			}
		}, ParallelConfig())
	case OpDiv:
		parallel.ForChunks(len(out), func(s, e int) {
			for i := s; i < e; i++ {
				out[i] = x[i] / y[i]
			}
		}, ParallelConfig())
	default:
		return nil, errors.Errorf("ndarray: unsupported operator %d", int(op))
	}

	return tensor.Owned(out, ra.Shape()), nil
}

// checkSameShape validates operands of an elementwise operation or comparison.
func checkSameShape[T tensor.Numeric](op string, a, b *tensor.Array[T]) error {
	if a.Rank() != b.Rank() {
		return errors.Wrapf(tensor.ErrShapeMismatch, "%s: rank %d vs %d", op, a.Rank(), b.Rank())
	}
	if !a.Shape().Equal(b.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "%s: extents %v vs %v", op, a.Shape(), b.Shape())
	}
	return nil
}
