package tensor

// Slice returns a derived Array sharing this array's buffer.
//
// Exactly one argument per buffer axis is required, in axis order, even when
// the receiver is itself a derived Array: a Range keeps the axis, an Index
// chips it. The result's declared rank is the number of Range arguments.
// No element is copied.
//
// Example:
//
//	t, _ := tensor.New[float64](tensor.Shape{3, 3, 3})
//	m, _ := t.Slice(tensor.R(0, 2), tensor.R(0, 3), tensor.I(0)) // 2x3 window of t[:, :, 0]
func (a *Array[T]) Slice(args ...Arg) (*Array[T], error) {
	v, err := NewView(a.buf.shape, args)
	if err != nil {
		return nil, err
	}
	a.buf.addRef()
	return &Array[T]{buf: a.buf, view: v}, nil
}

// MustSlice is like Slice but panics on error.
// Intended for tests and literals with known-good arguments.
func (a *Array[T]) MustSlice(args ...Arg) *Array[T] {
	s, err := a.Slice(args...)
	if err != nil {
		panic(err)
	}
	return s
}
