// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"github.com/born-ml/ndarray/internal/printer"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Style selects the text layout used by Format and Fprint.
type Style = printer.Style

// Layouts.
const (
	StyleNested = printer.Nested
	StyleFixed  = printer.Fixed
)

// ParseStyle maps "nested"/"cpp" or "fixed"/"fortran" to a Style.
func ParseStyle(name string) (Style, error) {
	return printer.ParseStyle(name)
}

// Format renders the elements visible through a's view.
func Format[T Numeric](a *Array[T], style Style) string {
	return printer.Format(a.Region(), style)
}

// Fprint writes "label:" and the rendering of a's view to w.
func Fprint[T Numeric](w io.Writer, label string, a *Array[T], style Style) error {
	return printer.Fprint(w, label, a.Region(), style)
}

// FprintBuffer writes "label:" and the rendering of a's whole buffer to w,
// ignoring the view.
func FprintBuffer[T Numeric](w io.Writer, label string, a *Array[T], style Style) error {
	buf := tensor.DenseRegion(a.Data(), a.BufferShape())
	return printer.Fprint(w, label, buf, style)
}
