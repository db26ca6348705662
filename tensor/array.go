// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Numeric is the constraint satisfied by supported element types.
type Numeric = tensor.Numeric

// DataType is runtime element type information.
type DataType = tensor.DataType

// Supported element types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
)

// Shape represents the extents of an array, one entry per axis.
type Shape = tensor.Shape

// Array is a typed N-dimensional array: a shared buffer seen through a view.
//
// Array provides:
//   - Shape information via Shape(), Rank(), BufferRank(), Dim(), Size()
//   - View-relative access via At() and Set()
//   - Buffer-relative access via BufferAt(), BufferSet() and Data()
//   - Zero-copy slicing via Slice()
//   - Materialization via Region() and Copy()
type Array[T Numeric] = tensor.Array[T]

// Region is a materialized view: a strided window into buffer memory.
type Region[T Numeric] = tensor.Region[T]

// View describes the window an Array exposes onto its buffer.
type View = tensor.View

// Chip records a buffer axis collapsed to a single index.
type Chip = tensor.Chip

// Arg is a slicing argument: a Range or an Index.
type Arg = tensor.Arg

// Range keeps a buffer axis, narrowed to [Start, End).
type Range = tensor.Range

// Index collapses a buffer axis to a single position.
type Index = tensor.Index

// New creates an Array with the given shape, filled with zeros.
//
// Example:
//
//	a, err := tensor.New[float64](tensor.Shape{3, 2, 1})
func New[T Numeric](shape Shape) (*Array[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates an Array from row-major data. The data is copied.
func FromSlice[T Numeric](data []T, shape Shape) (*Array[T], error) {
	return tensor.FromSlice(data, shape)
}

// Full creates an Array filled with value.
func Full[T Numeric](shape Shape, value T) (*Array[T], error) {
	return tensor.Full(shape, value)
}

// R returns the range [start, end) for slicing.
func R(start, end int) Range {
	return tensor.R(start, end)
}

// I returns a single-index slicing argument that chips its axis.
func I(i int) Index {
	return tensor.I(i)
}
