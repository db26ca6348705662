package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// Entry is one stored array: its element type, shape and little-endian
// row-major bytes.
type Entry struct {
	DType tensor.DataType
	Shape tensor.Shape
	Data  []byte
}

// Encode captures the visible elements of a, densely in row-major order.
func Encode[T tensor.Numeric](a *tensor.Array[T]) Entry {
	values := a.Region().Dense()

	var buf bytes.Buffer
	buf.Grow(len(values) * a.DType().Size())
	// Writes to a bytes.Buffer cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, values)

	return Entry{
		DType: a.DType(),
		Shape: a.Shape().Clone(),
		Data:  buf.Bytes(),
	}
}

// Decode rebuilds a base Array from e. The element type must match the
// stored dtype.
func Decode[T tensor.Numeric](e Entry) (*tensor.Array[T], error) {
	if want := tensor.DataTypeOf[T](); e.DType != want {
		return nil, errors.Wrapf(ErrDTypeMismatch, "stored %s, requested %s", e.DType, want)
	}
	if err := e.validate(); err != nil {
		return nil, err
	}

	values := make([]T, e.Shape.NumElements())
	if err := binary.Read(bytes.NewReader(e.Data), binary.LittleEndian, values); err != nil {
		return nil, errors.Wrap(err, "failed to decode array data")
	}
	return tensor.Owned(values, e.Shape), nil
}

// validate checks that the byte length agrees with the dtype and shape.
func (e Entry) validate() error {
	for i, dim := range e.Shape {
		if dim < 0 {
			return errors.Wrapf(tensor.ErrBadShape, "negative dimension at index %d: %d", i, dim)
		}
	}
	want, ok := byteSize(e.Shape, e.DType.Size())
	if !ok {
		return &ValidationError{
			Type:    "size_mismatch",
			Details: fmt.Sprintf("%s%v overflows the addressable size", e.DType, []int(e.Shape)),
		}
	}
	if len(e.Data) != want {
		return &ValidationError{
			Type:    "size_mismatch",
			Details: fmt.Sprintf("%s%v needs %d bytes, got %d", e.DType, []int(e.Shape), want, len(e.Data)),
		}
	}
	return nil
}

// byteSize returns elemSize times the element count of shape; ok is false
// when the product does not fit in an int. Extents must be non-negative.
func byteSize(shape tensor.Shape, elemSize int) (int, bool) {
	n := elemSize
	for _, dim := range shape {
		if dim != 0 && n > math.MaxInt/dim {
			return 0, false
		}
		n *= dim
	}
	return n, true
}
