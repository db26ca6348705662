package tensor

import (
	"fmt"
	"slices"
)

// Region is a materialized view: a strided rectangular window into buffer
// memory. It never copies; reads and writes go straight to the buffer.
type Region[T Numeric] struct {
	data    []T
	base    int
	shape   Shape
	strides []int
}

// Materialize resolves a view over buf into a Region.
//
// Chipped axes are collapsed first, highest axis first, so that the
// positions of the axes still to be collapsed stay valid. The kept axes are
// then narrowed to the view's offsets and extents.
//
// Materialize panics if v breaks a view invariant for buf (see View.Validate).
func Materialize[T Numeric](buf *Buffer[T], v View) Region[T] {
	if err := v.Validate(buf.shape); err != nil {
		panic(fmt.Sprintf("materialize: %v", err))
	}

	shape := buf.shape.Clone()
	strides := slices.Clone(buf.strides)
	base := 0

	for i := len(v.Chips) - 1; i >= 0; i-- {
		c := v.Chips[i]
		base += c.Index * strides[c.Axis]
		shape = slices.Delete(shape, c.Axis, c.Axis+1)
		strides = slices.Delete(strides, c.Axis, c.Axis+1)
	}

	for i := range shape {
		base += v.Offsets[i] * strides[i]
		shape[i] = v.Extents[i]
	}

	return Region[T]{
		data:    buf.data,
		base:    base,
		shape:   shape,
		strides: strides,
	}
}

// DenseRegion wraps a row-major slice as a Region of the given shape.
func DenseRegion[T Numeric](data []T, shape Shape) Region[T] {
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("dense region: shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data)))
	}
	return Region[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// Shape returns the region's extents.
func (r Region[T]) Shape() Shape {
	return r.shape
}

// Strides returns the buffer strides of the region's axes.
func (r Region[T]) Strides() []int {
	return r.strides
}

// Rank returns the number of axes.
func (r Region[T]) Rank() int {
	return len(r.shape)
}

// Len returns the number of elements in the region.
func (r Region[T]) Len() int {
	return r.shape.NumElements()
}

// Contiguous reports whether the region occupies one unbroken row-major run
// of buffer memory.
func (r Region[T]) Contiguous() bool {
	expected := 1
	for i := len(r.shape) - 1; i >= 0; i-- {
		if r.shape[i] == 1 {
			continue
		}
		if r.strides[i] != expected {
			return false
		}
		expected *= r.shape[i]
	}
	return true
}

// Data returns the buffer slice the region indexes into. Positions returned
// by Pos and Each address this slice.
func (r Region[T]) Data() []T {
	return r.data
}

// Flat returns the region's elements as a row-major subslice of buffer
// memory when the region is contiguous; ok is false otherwise.
func (r Region[T]) Flat() (values []T, ok bool) {
	if !r.Contiguous() {
		return nil, false
	}
	n := r.Len()
	if n == 0 {
		return []T{}, true
	}
	return r.data[r.base : r.base+n], true
}

// Values returns the elements in row-major order, sharing buffer memory when
// the region is contiguous and copying otherwise. Callers must not write to it.
func (r Region[T]) Values() []T {
	if flat, ok := r.Flat(); ok {
		return flat
	}
	return r.Dense()
}

// Pos converts a region multi-index to a position in the buffer slice.
// Indices are not bounds-checked.
func (r Region[T]) Pos(indices ...int) int {
	pos := r.base
	for i, idx := range indices {
		pos += idx * r.strides[i]
	}
	return pos
}

// At returns the element at the given region indices.
func (r Region[T]) At(indices ...int) T {
	return r.data[r.Pos(indices...)]
}

// Set stores value at the given region indices.
func (r Region[T]) Set(value T, indices ...int) {
	r.data[r.Pos(indices...)] = value
}

// Each calls fn for every element in row-major order (last axis fastest),
// passing the region index and the buffer position. Iteration stops early
// when fn returns false. The index slice is reused between calls.
func (r Region[T]) Each(fn func(index []int, pos int) bool) {
	if r.Len() == 0 {
		return
	}
	index := make([]int, len(r.shape))
	pos := r.base
	for {
		if !fn(index, pos) {
			return
		}
		axis := len(r.shape) - 1
		for ; axis >= 0; axis-- {
			index[axis]++
			pos += r.strides[axis]
			if index[axis] < r.shape[axis] {
				break
			}
			pos -= index[axis] * r.strides[axis]
			index[axis] = 0
		}
		if axis < 0 {
			return
		}
	}
}

// Dense returns a row-major copy of the region's elements.
func (r Region[T]) Dense() []T {
	out := make([]T, r.Len())
	if len(out) == 0 {
		return out
	}
	if r.Contiguous() {
		copy(out, r.data[r.base:r.base+len(out)])
		return out
	}
	i := 0
	r.Each(func(_ []int, pos int) bool {
		out[i] = r.data[pos]
		i++
		return true
	})
	return out
}

// Fill stores value in every element of the region.
func (r Region[T]) Fill(value T) {
	r.Each(func(_ []int, pos int) bool {
		r.data[pos] = value
		return true
	})
}
