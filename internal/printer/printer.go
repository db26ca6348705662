// Package printer renders materialized array views as text.
package printer

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// Style selects the text layout.
type Style int

// Supported layouts.
const (
	// Nested prints brace-delimited rows, one outer row per line:
	//
	//	{ { 1, 2, 3 },
	//	  { 4, 5, 6 } }
	Nested Style = iota
	// Fixed prints every element in column-major order (first axis fastest)
	// on one line, each in an 18-character fixed-point field.
	Fixed
)

// fieldWidth is the width of one Fixed-style field.
const fieldWidth = 18

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Nested:
		return "nested"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseStyle maps a style name to a Style. "cpp" and "fortran" are accepted
// as aliases of nested and fixed.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "nested", "cpp", "":
		return Nested, nil
	case "fixed", "fortran":
		return Fixed, nil
	default:
		return 0, errors.Errorf("printer: unknown style %q", name)
	}
}

// Format renders the region in the given style. The result ends with a newline.
func Format[T tensor.Numeric](r tensor.Region[T], style Style) string {
	var b strings.Builder
	switch style {
	case Fixed:
		formatFixed(&b, columnMajor(r))
	default:
		index := make([]int, r.Rank())
		formatNested(&b, r, index, 0)
	}
	b.WriteByte('\n')
	return b.String()
}

// Fprint writes "label:" followed by the rendering of the region.
func Fprint[T tensor.Numeric](w io.Writer, label string, r tensor.Region[T], style Style) error {
	if _, err := fmt.Fprintf(w, "%s:\n%s", label, Format(r, style)); err != nil {
		return errors.Wrap(err, "printer: write")
	}
	return nil
}

func formatNested[T tensor.Numeric](b *strings.Builder, r tensor.Region[T], index []int, depth int) {
	if r.Rank() == 0 {
		fmt.Fprint(b, r.At())
		return
	}

	extent := r.Shape()[depth]
	b.WriteString("{ ")
	for i := 0; i < extent; i++ {
		index[depth] = i
		if depth == r.Rank()-1 {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(b, r.At(index...))
			continue
		}
		if i > 0 {
			b.WriteString(",\n")
			b.WriteString(strings.Repeat("  ", depth+1))
		}
		formatNested(b, r, index, depth+1)
	}
	b.WriteString(" }")
}

func formatFixed[T tensor.Numeric](b *strings.Builder, values []T) {
	for i, v := range values {
		value := float64(v)
		if i > 0 {
			// Negative values give up one separator space to the sign.
			if value < 0 {
				b.WriteString("       ")
			} else {
				b.WriteString("        ")
			}
		}
		precision := max(fieldWidth-intDigits(value)-1, 0)
		fmt.Fprintf(b, "%*.*f", fieldWidth, precision, value)
	}
}

// columnMajor returns the region's elements with the first axis varying fastest.
func columnMajor[T tensor.Numeric](r tensor.Region[T]) []T {
	out := make([]T, 0, r.Len())
	if r.Len() == 0 {
		return out
	}
	shape := r.Shape()
	index := make([]int, r.Rank())
	for {
		out = append(out, r.At(index...))
		axis := 0
		for ; axis < len(index); axis++ {
			index[axis]++
			if index[axis] < shape[axis] {
				break
			}
			index[axis] = 0
		}
		if axis == len(index) {
			return out
		}
	}
}

// intDigits returns the number of decimal digits in the integer part of v.
func intDigits(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	n := 1
	for p := math.Trunc(math.Abs(v)); p >= 10; p = math.Trunc(p / 10) {
		n++
	}
	return n
}
