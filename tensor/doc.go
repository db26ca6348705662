// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides typed, view-based N-dimensional arrays over dense
// numeric buffers.
//
// # Overview
//
// An Array pairs a shared, row-major buffer with a view. This package provides:
//   - Generic type-safe arrays (Array[T]) for float32, float64, int32, int64
//   - Zero-copy slicing with ranges and chipped (collapsed) axes
//   - Elementwise and scalar algebra on views
//   - Rank-aware matrix multiplication and contraction
//   - Tolerance-based comparison with first-mismatch diagnostics
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    b, _ := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
//
//	    p, _ := tensor.MatMul(a, b) // [[58, 64], [139, 154]]
//	    fmt.Print(tensor.Format(p.Array, tensor.StyleNested))
//	}
//
// # Slicing
//
// Slice takes one argument per buffer axis. R(start, end) keeps the axis and
// narrows it to [start, end); I(i) fixes the axis at index i and removes it
// from the view:
//
//	t, _ := tensor.New[float64](tensor.Shape{3, 3, 3})
//	m, _ := t.Slice(tensor.R(0, 2), tensor.R(0, 3), tensor.I(0)) // rank 2, shape (2, 3)
//
// Slices share the buffer of the array they come from. Writing through m is
// visible through t and every other slice of t. Slicing always addresses
// buffer axes, so slicing a slice still takes one argument per buffer axis.
//
// # Element Access
//
// At and Set index the view: one index per kept axis, relative to the view's
// offsets. BufferAt and BufferSet index the whole buffer and ignore the view.
//
// # Matrix Multiplication
//
// MatMul picks one of four strategies from the operands' ranks and whether
// they are sliced:
//
//	rank 1 @ rank 1, both unsliced    -> VectorDot          (scalar)
//	rank 1 @ rank 1, either sliced    -> SliceContraction   (scalar)
//	rank 2 @ rank 2, both unsliced    -> DenseMatMul        (rank 2)
//	rank >= 2 @ rank >= 2, otherwise  -> GeneralContraction (last axis of a with first axis of b)
//
// # Persistence
//
// Save and Load store named arrays in the SafeTensors format. Only the
// visible elements of a view are written; loaded arrays are base arrays:
//
//	err := tensor.SaveFile("arrays.safetensors", map[string]*tensor.Array[float64]{"m": m}, nil)
//	arrays, meta, err := tensor.LoadFile[float64]("arrays.safetensors")
//
// # Errors
//
// Operations return ErrArityMismatch, ErrInvalidRange, ErrShapeMismatch,
// ErrIndexOutOfRange, ErrBadShape or ErrInvalidTolerance, wrapped with
// context; match them with errors.Is. Load additionally reports
// ErrChecksumMismatch, ErrDTypeMismatch, ErrUnsupportedDType and
// *ValidationError for malformed files.
//
// # Concurrency
//
// Arrays are not safe for concurrent mutation. Kernels may split their inner
// loops across goroutines (see backend/cpu), but every call returns only
// after all work is done.
package tensor
