package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Array is a typed N-dimensional array: a shared Buffer seen through a View.
//
// A base Array owns a freshly allocated buffer and views all of it. A derived
// Array, produced by Slice, shares the buffer of the Array it was sliced from;
// writes through either are visible through both.
//
// Example:
//
//	m, _ := tensor.New[float64](tensor.Shape{2, 3})
//	row, _ := m.Slice(tensor.I(0), tensor.R(0, 3)) // rank 1, aliases m
//	_ = row.Set(7, 0)                              // m.At(0, 0) == 7
type Array[T Numeric] struct {
	buf  *Buffer[T]
	view View
}

// New creates a base Array with the given shape, filled with zeros.
func New[T Numeric](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	buf := newBuffer[T](shape)
	return &Array[T]{buf: buf, view: FullView(buf.shape)}, nil
}

// FromSlice creates a base Array from row-major data.
// The slice is copied into the array's buffer.
func FromSlice[T Numeric](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(a.buf.data, data)
	return a, nil
}

// Full creates a base Array filled with value.
func Full[T Numeric](shape Shape, value T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	a.SetConstant(value)
	return a, nil
}

// Owned wraps a row-major result slice as a base Array without copying.
// Backends use it to hand back freshly computed results.
func Owned[T Numeric](data []T, shape Shape) *Array[T] {
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("owned: shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data)))
	}
	buf := &Buffer[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
	buf.refCount.Store(1)
	return &Array[T]{buf: buf, view: FullView(buf.shape)}
}

// Zeros allocates a zero-filled result Array. Unlike New it accepts empty
// extents, since results inherit the shape of possibly empty views.
func Zeros[T Numeric](shape Shape) *Array[T] {
	buf := newBuffer[T](shape)
	return &Array[T]{buf: buf, view: FullView(buf.shape)}
}

// Rank returns the declared rank M of the view.
func (a *Array[T]) Rank() int {
	return a.view.Rank()
}

// BufferRank returns the rank N of the underlying buffer.
func (a *Array[T]) BufferRank() int {
	return a.buf.Rank()
}

// Shape returns the extents of the view.
func (a *Array[T]) Shape() Shape {
	return a.view.Shape()
}

// BufferShape returns the shape of the underlying buffer.
func (a *Array[T]) BufferShape() Shape {
	return a.buf.shape.Clone()
}

// Dim returns the view extent of the given axis.
func (a *Array[T]) Dim(axis int) (int, error) {
	if axis < 0 || axis >= a.Rank() {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "axis %d for a rank-%d array", axis, a.Rank())
	}
	return a.view.Extents[axis], nil
}

// Size returns the number of elements visible through the view.
func (a *Array[T]) Size() int {
	return a.view.Size()
}

// Sliced reports whether the view is a proper subset of the buffer.
func (a *Array[T]) Sliced() bool {
	return a.view.Sliced
}

// View returns a copy of the array's view descriptor.
func (a *Array[T]) View() View {
	return a.view.clone()
}

// DType returns the runtime element type.
func (a *Array[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Buffer returns the shared buffer.
func (a *Array[T]) Buffer() *Buffer[T] {
	return a.buf
}

// Data returns the whole underlying buffer in row-major order, ignoring the view.
//
// WARNING: Modifications to the returned slice are visible through every
// Array sharing the buffer.
func (a *Array[T]) Data() []T {
	return a.buf.data
}

// Region materializes the view into a strided window over the buffer.
func (a *Array[T]) Region() Region[T] {
	return Materialize(a.buf, a.view)
}

// SetConstant stores value in every element visible through the view.
// Buffer elements outside the view are left untouched.
func (a *Array[T]) SetConstant(value T) {
	a.Region().Fill(value)
}

// At returns the element at the given view-relative indices.
// One index per kept axis is required.
func (a *Array[T]) At(indices ...int) (T, error) {
	r := a.Region()
	if err := checkIndices(r.Shape(), indices); err != nil {
		var zero T
		return zero, err
	}
	return r.At(indices...), nil
}

// Set stores value at the given view-relative indices.
func (a *Array[T]) Set(value T, indices ...int) error {
	r := a.Region()
	if err := checkIndices(r.Shape(), indices); err != nil {
		return err
	}
	r.Set(value, indices...)
	return nil
}

// BufferAt returns the element at a full buffer multi-index, bypassing the
// view's offsets and chips.
func (a *Array[T]) BufferAt(indices ...int) (T, error) {
	if err := checkIndices(a.buf.shape, indices); err != nil {
		var zero T
		return zero, err
	}
	return a.buf.data[a.buf.offset(indices)], nil
}

// BufferSet stores value at a full buffer multi-index, bypassing the view.
func (a *Array[T]) BufferSet(value T, indices ...int) error {
	if err := checkIndices(a.buf.shape, indices); err != nil {
		return err
	}
	a.buf.data[a.buf.offset(indices)] = value
	return nil
}

// Copy returns a base Array holding a dense copy of the visible elements.
func (a *Array[T]) Copy() *Array[T] {
	r := a.Region()
	return Owned(r.Dense(), r.Shape())
}

// SharesBuffer reports whether a and other alias the same buffer.
func (a *Array[T]) SharesBuffer(other *Array[T]) bool {
	return a.buf == other.buf
}

// Refs returns the number of Arrays currently referencing the buffer.
func (a *Array[T]) Refs() int {
	return a.buf.Refs()
}

// Release drops this array's reference to the shared buffer.
// The array must not be used afterwards.
func (a *Array[T]) Release() {
	a.buf.release()
}

// String returns a short description of the array.
func (a *Array[T]) String() string {
	if a.Rank() == a.BufferRank() && !a.Sliced() {
		return fmt.Sprintf("Array[%s]%v", a.DType(), []int(a.view.Extents))
	}
	return fmt.Sprintf("Array[%s]%v view of %v", a.DType(), []int(a.view.Extents), []int(a.buf.shape))
}

// checkIndices validates a multi-index against a shape.
func checkIndices(shape Shape, indices []int) error {
	if len(indices) != len(shape) {
		return errors.Wrapf(ErrArityMismatch, "expected %d indices, got %d", len(shape), len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			return errors.Wrapf(ErrIndexOutOfRange, "index %d out of bounds for dimension %d (size %d)", idx, i, shape[i])
		}
	}
	return nil
}
