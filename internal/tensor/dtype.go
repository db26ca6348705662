// Package tensor provides the view-based N-dimensional array core: shared
// buffers, views with chipped axes, slicing and view materialization.
package tensor

import "unsafe"

// Numeric is a constraint for supported array element types.
// It uses Go generics to ensure compile-time type safety.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types for arrays.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// DataTypeOf infers the DataType of the element type T, including named
// types whose underlying type is one of the supported kinds.
func DataTypeOf[T Numeric]() DataType {
	var zero T
	one, two := T(1), T(2)
	isFloat := one/two != 0
	size := unsafe.Sizeof(zero)
	switch {
	case isFloat && size == 4:
		return Float32
	case isFloat:
		return Float64
	case size == 4:
		return Int32
	default:
		return Int64
	}
}
