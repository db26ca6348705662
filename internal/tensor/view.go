package tensor

import (
	"slices"

	"github.com/pkg/errors"
)

// Chip records a buffer axis collapsed to a single fixed index.
type Chip struct {
	Axis  int
	Index int
}

// View describes a rank-M window onto a rank-N buffer.
//
// Kept axes are the buffer axes without a chip, in ascending axis order;
// Offsets and Extents hold one entry per kept axis. Chips hold the N-M
// collapsed axes, also in ascending axis order.
type View struct {
	Offsets []int
	Extents []int
	Chips   []Chip
	Sliced  bool
}

// FullView returns the view covering every element of a buffer of the given shape.
func FullView(shape Shape) View {
	return View{
		Offsets: make([]int, len(shape)),
		Extents: shape.Clone(),
		Chips:   nil,
		Sliced:  false,
	}
}

// NewView builds the view selected by one argument per buffer axis.
// A Range keeps its axis with offset Start and extent End-Start; an Index
// chips the axis. The view is sliced when any kept axis is narrower than the
// buffer or any axis is chipped.
func NewView(bufShape Shape, args []Arg) (View, error) {
	if len(args) != len(bufShape) {
		return View{}, errors.Wrapf(ErrArityMismatch, "got %d arguments for a rank-%d buffer", len(args), len(bufShape))
	}

	var v View
	for axis, arg := range args {
		extent := bufShape[axis]
		switch a := arg.(type) {
		case Range:
			if a.End < a.Start {
				return View{}, errors.Wrapf(ErrInvalidRange, "axis %d: range %v", axis, a)
			}
			if a.Start < 0 || a.End > extent {
				return View{}, errors.Wrapf(ErrIndexOutOfRange, "axis %d: range %v exceeds extent %d", axis, a, extent)
			}
			v.Offsets = append(v.Offsets, a.Start)
			v.Extents = append(v.Extents, a.Len())
			if a.Start != 0 || a.Len() != extent {
				v.Sliced = true
			}
		case Index:
			if int(a) < 0 || int(a) >= extent {
				return View{}, errors.Wrapf(ErrIndexOutOfRange, "axis %d: index %d exceeds extent %d", axis, a, extent)
			}
			v.Chips = append(v.Chips, Chip{Axis: axis, Index: int(a)})
			v.Sliced = true
		default:
			return View{}, errors.Wrapf(ErrArityMismatch, "axis %d: unsupported argument %T", axis, arg)
		}
	}
	return v, nil
}

// Rank returns the declared rank M (number of kept axes).
func (v View) Rank() int {
	return len(v.Extents)
}

// Shape returns the extents of the kept axes.
func (v View) Shape() Shape {
	return Shape(v.Extents).Clone()
}

// Size returns the number of elements visible through the view.
func (v View) Size() int {
	return Shape(v.Extents).NumElements()
}

// KeptAxes returns the buffer axes that survive in the view, ascending.
func (v View) KeptAxes(bufRank int) []int {
	kept := make([]int, 0, bufRank-len(v.Chips))
	c := 0
	for axis := 0; axis < bufRank; axis++ {
		if c < len(v.Chips) && v.Chips[c].Axis == axis {
			c++
			continue
		}
		kept = append(kept, axis)
	}
	return kept
}

// Validate checks the view against the buffer it describes:
// kept and chipped axes cover the buffer exactly once in axis order, every
// window stays in bounds and the sliced flag matches the window.
func (v View) Validate(bufShape Shape) error {
	n := len(bufShape)
	if len(v.Offsets) != len(v.Extents) {
		return errors.Wrapf(ErrShapeMismatch, "view has %d offsets and %d extents", len(v.Offsets), len(v.Extents))
	}
	if len(v.Chips) != n-v.Rank() {
		return errors.Wrapf(ErrArityMismatch, "view has %d chips, want %d", len(v.Chips), n-v.Rank())
	}
	if !slices.IsSortedFunc(v.Chips, func(a, b Chip) int { return a.Axis - b.Axis }) {
		return errors.Wrap(ErrArityMismatch, "chips are not in axis order")
	}

	sliced := len(v.Chips) > 0
	for i, c := range v.Chips {
		if i > 0 && v.Chips[i-1].Axis == c.Axis {
			return errors.Wrapf(ErrArityMismatch, "axis %d chipped twice", c.Axis)
		}
		if c.Axis < 0 || c.Axis >= n {
			return errors.Wrapf(ErrIndexOutOfRange, "chip axis %d for a rank-%d buffer", c.Axis, n)
		}
		if c.Index < 0 || c.Index >= bufShape[c.Axis] {
			return errors.Wrapf(ErrIndexOutOfRange, "chip index %d on axis %d (extent %d)", c.Index, c.Axis, bufShape[c.Axis])
		}
	}
	for i, axis := range v.KeptAxes(n) {
		off, ext := v.Offsets[i], v.Extents[i]
		if off < 0 || ext < 0 || off+ext > bufShape[axis] {
			return errors.Wrapf(ErrIndexOutOfRange, "axis %d: window [%d, %d) exceeds extent %d", axis, off, off+ext, bufShape[axis])
		}
		if off != 0 || ext != bufShape[axis] {
			sliced = true
		}
	}
	if sliced != v.Sliced {
		return errors.Errorf("ndarray: view sliced flag is %t, window implies %t", v.Sliced, sliced)
	}
	return nil
}

// clone returns a deep copy of the view.
func (v View) clone() View {
	return View{
		Offsets: slices.Clone(v.Offsets),
		Extents: slices.Clone(v.Extents),
		Chips:   slices.Clone(v.Chips),
		Sliced:  v.Sliced,
	}
}
