// Package main provides the ndarray CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/born-ml/ndarray/internal/serialization"
	"github.com/born-ml/ndarray/tensor"
	"github.com/pkg/errors"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "demo":
		style := "nested"
		if len(os.Args) > 2 {
			style = os.Args[2]
		}
		if err := demo(os.Stdout, style); err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "inspect: missing file argument")
			os.Exit(2)
		}
		style := "nested"
		if len(os.Args) > 3 {
			style = os.Args[3]
		}
		if err := inspect(os.Stdout, os.Args[2], style); err != nil {
			fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ndarray - view-based N-dimensional arrays for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version         Show version")
	fmt.Fprintln(w, "  demo [style]    Run the slicing and matmul walkthrough (style: nested|fixed)")
	fmt.Fprintln(w, "  inspect <file> [style]")
	fmt.Fprintln(w, "                  Print every array stored in a SafeTensors file")
}

// demo walks through slicing, aliasing, dot products and matrix products.
func demo(w io.Writer, styleName string) error {
	style, err := tensor.ParseStyle(styleName)
	if err != nil {
		return err
	}

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	b, err := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
	if err != nil {
		return err
	}
	if err := tensor.Fprint(w, "a", a, style); err != nil {
		return err
	}
	if err := tensor.Fprint(w, "b", b, style); err != nil {
		return err
	}

	p, err := tensor.MatMul(a, b)
	if err != nil {
		return err
	}
	if err := tensor.Fprint(w, fmt.Sprintf("a @ b (%v)", p.Kind), p.Array, style); err != nil {
		return err
	}

	row, err := a.Slice(tensor.I(0), tensor.R(0, 3))
	if err != nil {
		return err
	}
	col, err := b.Slice(tensor.R(0, 3), tensor.I(1))
	if err != nil {
		return err
	}
	dot, err := tensor.MatMul(row, col)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "a[0, :] . b[:, 1] (%v): %g\n", dot.Kind, dot.Scalar)

	if err := row.Set(-1, 0); err != nil {
		return err
	}
	fmt.Fprintln(w, "after a[0, :][0] = -1:")
	return tensor.Fprint(w, "a", a, style)
}

// inspect prints every array of a SafeTensors file, whatever its dtype.
func inspect(w io.Writer, path, styleName string) error {
	style, err := tensor.ParseStyle(styleName)
	if err != nil {
		return err
	}
	f, err := serialization.ReadFile(path)
	if err != nil {
		return err
	}

	for _, name := range f.Names() {
		if err := printAny(w, name, f.Entries[name], style); err != nil {
			return err
		}
	}
	return nil
}

// printAny decodes e with the element type its dtype names and prints it.
func printAny(w io.Writer, name string, e serialization.Entry, style tensor.Style) error {
	label := fmt.Sprintf("%s %s%v", name, e.DType, []int(e.Shape))
	switch e.DType {
	case tensor.Float32:
		return printEntry[float32](w, label, e, style)
	case tensor.Float64:
		return printEntry[float64](w, label, e, style)
	case tensor.Int32:
		return printEntry[int32](w, label, e, style)
	case tensor.Int64:
		return printEntry[int64](w, label, e, style)
	default:
		return errors.Wrapf(serialization.ErrUnsupportedDType, "%s: %s", name, e.DType)
	}
}

func printEntry[T tensor.Numeric](w io.Writer, label string, e serialization.Entry, style tensor.Style) error {
	a, err := serialization.Decode[T](e)
	if err != nil {
		return err
	}
	return tensor.Fprint(w, label, a, style)
}
