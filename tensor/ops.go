// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// Elementwise operations. Operands must have the same rank and extents;
// the result is a new Array that shares nothing with its operands.

// Add returns a + b elementwise.
func Add[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return cpu.Add(a, b)
}

// Sub returns a - b elementwise.
func Sub[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return cpu.Sub(a, b)
}

// Mul returns a * b elementwise.
func Mul[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return cpu.Mul(a, b)
}

// Div returns a / b elementwise.
func Div[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return cpu.Div(a, b)
}

// Scalar operations.

// AddScalar returns x + s.
func AddScalar[T Numeric](x *Array[T], s T) *Array[T] { return cpu.AddScalar(x, s) }

// SubScalar returns x - s.
func SubScalar[T Numeric](x *Array[T], s T) *Array[T] { return cpu.SubScalar(x, s) }

// MulScalar returns x * s.
func MulScalar[T Numeric](x *Array[T], s T) *Array[T] { return cpu.MulScalar(x, s) }

// DivScalar returns x / s.
func DivScalar[T Numeric](x *Array[T], s T) *Array[T] { return cpu.DivScalar(x, s) }

// ScalarAdd returns s + x.
func ScalarAdd[T Numeric](s T, x *Array[T]) *Array[T] { return cpu.ScalarAdd(s, x) }

// ScalarSub returns s - x.
func ScalarSub[T Numeric](s T, x *Array[T]) *Array[T] { return cpu.ScalarSub(s, x) }

// ScalarMul returns s * x.
func ScalarMul[T Numeric](s T, x *Array[T]) *Array[T] { return cpu.ScalarMul(s, x) }

// ScalarDiv returns s / x.
func ScalarDiv[T Numeric](s T, x *Array[T]) *Array[T] { return cpu.ScalarDiv(s, x) }

// MatMulKind identifies the multiplication strategy.
type MatMulKind = tensor.MatMulKind

// Multiplication strategies.
const (
	VectorDot          = tensor.VectorDot
	SliceContraction   = tensor.SliceContraction
	DenseMatMul        = tensor.DenseMatMul
	GeneralContraction = tensor.GeneralContraction
)

// Product is the result of MatMul: Scalar for the vector strategies,
// Array for the matrix ones.
type Product[T Numeric] = cpu.Product[T]

// SelectMatMul reports which strategy MatMul would use for a @ b.
func SelectMatMul[T Numeric](a, b *Array[T]) (MatMulKind, error) {
	return tensor.SelectMatMul(a, b)
}

// MatMul multiplies a by b. Contracted axes must have equal length.
func MatMul[T Numeric](a, b *Array[T]) (Product[T], error) {
	return cpu.MatMul(a, b)
}

// Dot multiplies two rank-1 arrays and returns the scalar result.
func Dot[T Numeric](a, b *Array[T]) (T, error) {
	p, err := cpu.MatMul(a, b)
	if err != nil {
		return 0, err
	}
	if !p.IsScalar() {
		return 0, errors.Wrapf(ErrShapeMismatch, "dot: %v yields an array, not a scalar", p.Kind)
	}
	return p.Scalar, nil
}

// MatMulArray multiplies two arrays of rank >= 2 and returns the array result.
func MatMulArray[T Numeric](a, b *Array[T]) (*Array[T], error) {
	p, err := cpu.MatMul(a, b)
	if err != nil {
		return nil, err
	}
	if p.IsScalar() {
		return nil, errors.Wrapf(ErrShapeMismatch, "matmul: %v yields a scalar, not an array", p.Kind)
	}
	return p.Array, nil
}

// Comparison.

// DefaultEpsilon is the default absolute tolerance of AllClose and Compare.
const DefaultEpsilon = cpu.DefaultEpsilon

// Mismatch describes the first element that failed a comparison.
type Mismatch = cpu.Mismatch

// CompareOption configures AllClose and Compare.
type CompareOption = cpu.CompareOption

// WithEpsilon sets the absolute tolerance.
func WithEpsilon(eps float64) CompareOption {
	return cpu.WithEpsilon(eps)
}

// Compare returns the first element, in row-major order, where a and b
// differ by more than the tolerance, or nil if there is none.
func Compare[T Numeric](a, b *Array[T], opts ...CompareOption) (*Mismatch, error) {
	return cpu.Compare(a, b, opts...)
}

// AllClose reports whether a and b agree elementwise within the tolerance.
func AllClose[T Numeric](a, b *Array[T], opts ...CompareOption) (bool, error) {
	return cpu.AllClose(a, b, opts...)
}
