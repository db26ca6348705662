package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Scalar operations - elementwise operations between a view and a scalar.
// The X-Scalar forms compute x[i] op s; the Scalar-X forms compute s op x[i].

// AddScalar returns x[i] + s.
func AddScalar[T tensor.Numeric](x *tensor.Array[T], s T) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return v + s })
}

// SubScalar returns x[i] - s.
func SubScalar[T tensor.Numeric](x *tensor.Array[T], s T) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return v - s })
}

// MulScalar returns x[i] * s.
func MulScalar[T tensor.Numeric](x *tensor.Array[T], s T) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return v * s })
}

// DivScalar returns x[i] / s.
func DivScalar[T tensor.Numeric](x *tensor.Array[T], s T) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return v / s })
}

// ScalarAdd returns s + x[i].
func ScalarAdd[T tensor.Numeric](s T, x *tensor.Array[T]) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return s + v })
}

// ScalarSub returns s - x[i].
func ScalarSub[T tensor.Numeric](s T, x *tensor.Array[T]) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return s - v })
}

// ScalarMul returns s * x[i].
func ScalarMul[T tensor.Numeric](s T, x *tensor.Array[T]) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return s * v })
}

// ScalarDiv returns s / x[i].
func ScalarDiv[T tensor.Numeric](s T, x *tensor.Array[T]) *tensor.Array[T] {
	return mapValues(x, func(v T) T { return s / v })
}

// mapValues applies f to every element of the view and returns a new base Array.
func mapValues[T tensor.Numeric](x *tensor.Array[T], f func(T) T) *tensor.Array[T] {
	r := x.Region()
	src := r.Values()
	out := make([]T, len(src))
	parallel.ForChunks(len(out), func(s, e int) {
		for i := s; i < e; i++ {
			out[i] = f(src[i])
		}
	}, ParallelConfig())
	return tensor.Owned(out, r.Shape())
}
