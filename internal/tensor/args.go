package tensor

import (
	"fmt"
)

// Arg is a single slicing argument: either a Range, which keeps the axis,
// or an Index, which chips it.
type Arg interface {
	isArg()
}

// Range selects the half-open interval [Start, End) of one buffer axis.
type Range struct {
	Start, End int
}

// R is shorthand for Range{Start: start, End: end}.
// Bounds are validated when the range is used to slice.
func R(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

func (Range) isArg() {}

// String returns the range in start:end form.
func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// Index fixes one buffer axis at a single position, removing it from the
// resulting view.
type Index int

// I is shorthand for Index(i).
func I(i int) Index {
	return Index(i)
}

func (Index) isArg() {}

// String returns the index as a plain integer.
func (i Index) String() string {
	return fmt.Sprintf("%d", int(i))
}
