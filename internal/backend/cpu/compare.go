package cpu

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// DefaultEpsilon is the absolute tolerance used by Compare and AllClose.
const DefaultEpsilon = 1e-8

// ErrInvalidTolerance is returned when the comparison tolerance is negative or NaN.
var ErrInvalidTolerance = errors.New("ndarray: tolerance must be a non-negative number")

// Mismatch describes the first element that failed a tolerance comparison.
type Mismatch struct {
	Index   []int   // View-relative multi-index of the element.
	AbsDiff float64 // |got - want|
	RelDiff float64 // AbsDiff / max(|got|, |want|), 0 when both are 0.
	Got     float64 // Element of the first operand.
	Want    float64 // Element of the second operand.
}

// Error implements the error interface so a mismatch can be returned or wrapped.
func (m *Mismatch) Error() string {
	var b strings.Builder
	b.WriteString("mismatch at index [")
	for i, idx := range m.Index {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", idx)
	}
	fmt.Fprintf(&b, "]: abs diff = %g, rel diff = %g, values = %g vs %g", m.AbsDiff, m.RelDiff, m.Got, m.Want)
	return b.String()
}

// CompareOption configures Compare and AllClose.
type CompareOption func(*compareOptions)

type compareOptions struct {
	epsilon float64
}

// WithEpsilon sets the absolute tolerance.
func WithEpsilon(eps float64) CompareOption {
	return func(o *compareOptions) {
		o.epsilon = eps
	}
}

// Compare checks a and b elementwise within an absolute tolerance.
//
// Elements are visited in row-major order (outermost axis slowest, indices
// ascending) and the first element whose absolute difference exceeds the
// tolerance is returned as a Mismatch. A nil Mismatch means every element
// passed. The views must have identical shapes.
func Compare[T tensor.Numeric](a, b *tensor.Array[T], opts ...CompareOption) (*Mismatch, error) {
	o := compareOptions{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.epsilon) || o.epsilon < 0 {
		return nil, errors.Wrapf(ErrInvalidTolerance, "got %g", o.epsilon)
	}
	if err := checkSameShape("compare", a, b); err != nil {
		return nil, err
	}

	ra, rb := a.Region(), b.Region()
	aData, bData := ra.Data(), rb.Data()

	var found *Mismatch
	ra.Each(func(index []int, pos int) bool {
		got := float64(aData[pos])
		want := float64(bData[rb.Pos(index...)])
		diff := math.Abs(got - want)
		if diff <= o.epsilon || math.IsNaN(diff) {
			return true
		}
		rel := 0.0
		if maxAbs := math.Max(math.Abs(got), math.Abs(want)); maxAbs > 0 {
			rel = diff / maxAbs
		}
		found = &Mismatch{
			Index:   append([]int(nil), index...),
			AbsDiff: diff,
			RelDiff: rel,
			Got:     got,
			Want:    want,
		}
		return false
	})
	return found, nil
}

// AllClose reports whether a and b agree elementwise within the tolerance.
func AllClose[T tensor.Numeric](a, b *tensor.Array[T], opts ...CompareOption) (bool, error) {
	m, err := Compare(a, b, opts...)
	if err != nil {
		return false, err
	}
	return m == nil, nil
}
