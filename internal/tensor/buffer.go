package tensor

import (
	"sync"
	"sync/atomic"
)

// Buffer is the dense, row-major storage shared by a base Array and every
// Array derived from it by slicing. Its rank and shape never change.
//
// The reference count tracks how many Arrays hold the buffer; Release on the
// last one drops the backing slice so the memory can be reclaimed even while
// a stale *Buffer pointer is still reachable.
type Buffer[T Numeric] struct {
	data     []T
	shape    Shape
	strides  []int
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer allocates a zero-filled buffer with refCount = 1.
// The shape must already be validated.
func newBuffer[T Numeric](shape Shape) *Buffer[T] {
	buf := &Buffer[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
	buf.refCount.Store(1)
	return buf
}

// Shape returns the buffer's shape.
func (b *Buffer[T]) Shape() Shape {
	return b.shape
}

// Strides returns the buffer's row-major strides.
func (b *Buffer[T]) Strides() []int {
	return b.strides
}

// Rank returns the buffer rank N.
func (b *Buffer[T]) Rank() int {
	return len(b.shape)
}

// Data returns the whole backing slice in row-major order.
// WARNING: Direct access to underlying memory shared by every alias.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Refs returns the current number of Arrays referencing the buffer.
func (b *Buffer[T]) Refs() int {
	return int(b.refCount.Load())
}

// addRef increments the reference count (for slicing).
func (b *Buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the data when it reaches 0.
func (b *Buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// offset converts a full buffer multi-index to a linear position.
// Indices must already be bounds-checked.
func (b *Buffer[T]) offset(indices []int) int {
	pos := 0
	for i, idx := range indices {
		pos += idx * b.strides[i]
	}
	return pos
}
